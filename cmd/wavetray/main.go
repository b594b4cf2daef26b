// WaveTray — deterministic layered toolpath generator
//
// Generates the toolpath for a cylindrical wave tray (a logistic
// radius profile modulated by a sinusoidal ripple, with an optional
// center hole and density-balanced infill) and exports it as a
// G-code-style program plus optional PDF/DXF/XLSX/PNG reports.
//
// Build:
//   go build -o wavetray ./cmd/wavetray
//
// Usage:
//   wavetray -out tray.gcode
//   wavetray -params custom.json -mode concentric -pdf layers.pdf
//   wavetray -write-params defaults.json

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ys4i/wavetray/internal/export"
	"github.com/ys4i/wavetray/internal/gcode"
	"github.com/ys4i/wavetray/internal/model"
	"github.com/ys4i/wavetray/internal/project"
	"github.com/ys4i/wavetray/internal/tray"
)

var (
	paramsFile  = flag.String("params", "", "Params JSON file (defaults used when empty)")
	presetName  = flag.String("preset", "", "Named preset from the presets file")
	mode        = flag.String("mode", "", "Infill mode override: lines or concentric")
	outFile     = flag.String("out", "tray.gcode", "Output toolpath program path")
	profileName = flag.String("profile", "Generic", "Post-processor profile name")
	workers     = flag.Int("workers", 1, "Parallel layer workers")
	pdfFile     = flag.String("pdf", "", "Write layer plates PDF to this path")
	dxfFile     = flag.String("dxf", "", "Write layer contours DXF to this path")
	xlsxFile    = flag.String("xlsx", "", "Write layer report XLSX to this path")
	labelFile   = flag.String("label", "", "Write QR job label PDF to this path")
	plotFile    = flag.String("plot", "", "Write a single-layer preview image to this path")
	plotLayer   = flag.Int("plot-layer", 0, "Layer index for -plot")
	writeParams = flag.String("write-params", "", "Write the effective params JSON to this path and exit")
)

func main() {
	flag.Parse()

	params, err := loadParams()
	if err != nil {
		log.Fatalf("load params: %v", err)
	}
	if *mode != "" {
		params.InfillMode = model.InfillMode(*mode)
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid params: %v", err)
	}

	if *writeParams != "" {
		if err := project.SaveParamsFile(*writeParams, params); err != nil {
			log.Fatalf("write params: %v", err)
		}
		fmt.Printf("wrote %s\n", *writeParams)
		return
	}

	res, err := tray.BuildParallel(params, *workers)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	settings := gcode.DefaultSettings()
	settings.Profile = *profileName
	program := gcode.New(settings).Generate(res, params)
	if err := os.WriteFile(*outFile, []byte(program), 0644); err != nil {
		log.Fatalf("write toolpath: %v", err)
	}

	summaries := tray.Summarize(res)
	printSummary(summaries)
	fmt.Printf("wrote %s\n", *outFile)

	if *pdfFile != "" {
		if err := export.ExportPDF(*pdfFile, res, params); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		fmt.Printf("wrote %s\n", *pdfFile)
	}
	if *dxfFile != "" {
		if err := export.ExportDXF(*dxfFile, res); err != nil {
			log.Fatalf("export dxf: %v", err)
		}
		fmt.Printf("wrote %s\n", *dxfFile)
	}
	if *xlsxFile != "" {
		if err := export.ExportXLSX(*xlsxFile, summaries); err != nil {
			log.Fatalf("export xlsx: %v", err)
		}
		fmt.Printf("wrote %s\n", *xlsxFile)
	}
	if *labelFile != "" {
		if err := export.ExportJobLabel(*labelFile, params); err != nil {
			log.Fatalf("export label: %v", err)
		}
		fmt.Printf("wrote %s\n", *labelFile)
	}
	if *plotFile != "" {
		if *plotLayer < 0 || *plotLayer >= len(res.Layers) {
			log.Fatalf("plot-layer %d out of range (0..%d)", *plotLayer, len(res.Layers)-1)
		}
		if err := export.ExportPlot(*plotFile, res.Layers[*plotLayer]); err != nil {
			log.Fatalf("export plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}

// loadParams resolves the -params and -preset flags, defaulting to the
// stock proportions.
func loadParams() (model.Params, error) {
	if *paramsFile != "" {
		return project.LoadParamsFile(*paramsFile)
	}
	if *presetName != "" {
		path, err := project.DefaultPresetsPath()
		if err != nil {
			return model.Params{}, err
		}
		presets, err := project.LoadPresets(path)
		if err != nil {
			return model.Params{}, err
		}
		preset, err := project.FindPreset(presets, *presetName)
		if err != nil {
			return model.Params{}, err
		}
		return preset.Params, nil
	}
	return model.DefaultParams(), nil
}

func printSummary(summaries []tray.LayerSummary) {
	var contours, segments int
	var length float64
	for _, s := range summaries {
		contours += s.Contours
		segments += s.InfillSegments
		length += s.TotalLength
	}
	fmt.Printf("%d layers, %d contours, %d infill segments, %.0f mm of path\n",
		len(summaries), contours, segments, length)
}
