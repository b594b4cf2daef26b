// Package export writes generated wave tray toolpaths to various file
// formats: PDF layer plates, QR-coded job labels, DXF contours, XLSX
// layer reports, and PNG previews.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/ys4i/wavetray/internal/geom"
	"github.com/ys4i/wavetray/internal/model"
	"github.com/ys4i/wavetray/internal/tray"
)

// pathColor represents an RGB color for a drawn path kind.
type pathColor struct {
	R, G, B int
}

var (
	wallColor   = pathColor{R: 76, G: 175, B: 80}   // green
	holeColor   = pathColor{R: 33, G: 150, B: 243}  // blue
	offsetColor = pathColor{R: 156, G: 39, B: 176}  // purple
	infillColor = pathColor{R: 158, G: 158, B: 158} // gray
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders one top-view plate per layer into a PDF document.
func ExportPDF(path string, res *tray.Result, params model.Params) error {
	if len(res.Layers) == 0 {
		return fmt.Errorf("no layers to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// A shared scale keeps all plates comparable across layers
	maxRadius := params.BaseRadius + math.Max(params.RadialGrowth, 0) + math.Abs(params.WaveAmplitude)
	for _, layer := range res.Layers {
		pdf.AddPage()
		renderLayerPage(pdf, layer, maxRadius)
	}

	return pdf.OutputFileAndClose(path)
}

// renderLayerPage draws a single layer's paths on the current page.
func renderLayerPage(pdf *fpdf.Fpdf, layer tray.Layer, maxRadius float64) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Layer %d: Z %.2f to %.2f mm", layer.Index, layer.BottomZ, layer.TopZ)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Drawing area, square, centered horizontally
	drawH := pageHeight - drawAreaTop - marginBottom
	drawW := drawH
	originX := (pageWidth - drawW) / 2
	scale := drawW / (2 * maxRadius * 1.05)
	centerX := originX + drawW/2
	centerY := drawAreaTop + drawH/2

	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.1)
	pdf.Rect(originX, drawAreaTop, drawW, drawH, "D")

	for i, el := range layer.Elements {
		switch e := el.(type) {
		case *geom.Path:
			c := contourColor(i)
			pdf.SetDrawColor(c.R, c.G, c.B)
			pdf.SetLineWidth(0.25)
			drawPath(pdf, e, centerX, centerY, scale)
		case *geom.PathGroup:
			pdf.SetDrawColor(infillColor.R, infillColor.G, infillColor.B)
			pdf.SetLineWidth(0.1)
			for _, p := range e.Paths {
				drawPath(pdf, p, centerX, centerY, scale)
			}
		}
	}
}

// contourColor maps the fixed per-layer element order to a color.
func contourColor(index int) pathColor {
	switch index {
	case 0:
		return wallColor
	case 1:
		return holeColor
	default:
		return offsetColor
	}
}

// drawPath projects a path to the page plane and strokes it.
func drawPath(pdf *fpdf.Fpdf, p *geom.Path, centerX, centerY, scale float64) {
	for i := 1; i < p.Len(); i++ {
		pdf.Line(
			centerX+p.Xs[i-1]*scale, centerY-p.Ys[i-1]*scale,
			centerX+p.Xs[i]*scale, centerY-p.Ys[i]*scale,
		)
	}
}
