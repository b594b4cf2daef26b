package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ys4i/wavetray/internal/model"
	"github.com/ys4i/wavetray/internal/tray"
)

// newTestBuild returns a compact build result for export smoke tests.
func newTestBuild(t *testing.T) (*tray.Result, model.Params) {
	t.Helper()
	p := model.DefaultParams()
	p.LayerCount = 2
	p.WaveSampleCount = 41
	p.HoleSampleCount = 24
	p.HoleLayerLimit = 1
	res, err := tray.Build(p)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return res, p
}

// requireNonEmptyFile fails the test unless path exists with content.
func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", path)
	}
}

func TestExportPDF(t *testing.T) {
	res, p := newTestBuild(t)
	path := filepath.Join(t.TempDir(), "layers.pdf")
	if err := ExportPDF(path, res, p); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestExportPDFNoLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, &tray.Result{}, model.DefaultParams()); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestExportJobLabel(t *testing.T) {
	_, p := newTestBuild(t)
	path := filepath.Join(t.TempDir(), "label.pdf")
	if err := ExportJobLabel(path, p); err != nil {
		t.Fatalf("ExportJobLabel failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestExportDXF(t *testing.T) {
	res, _ := newTestBuild(t)
	path := filepath.Join(t.TempDir(), "layers.dxf")
	if err := ExportDXF(path, res); err != nil {
		t.Fatalf("ExportDXF failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestExportXLSX(t *testing.T) {
	res, _ := newTestBuild(t)
	path := filepath.Join(t.TempDir(), "layers.xlsx")
	if err := ExportXLSX(path, tray.Summarize(res)); err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestExportXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportXLSX(path, nil); err == nil {
		t.Fatal("expected error for empty summaries")
	}
}

func TestExportPlot(t *testing.T) {
	res, _ := newTestBuild(t)
	path := filepath.Join(t.TempDir(), "layer0.png")
	if err := ExportPlot(path, res.Layers[0]); err != nil {
		t.Fatalf("ExportPlot failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}
