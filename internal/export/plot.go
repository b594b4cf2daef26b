package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ys4i/wavetray/internal/geom"
	"github.com/ys4i/wavetray/internal/tray"
)

// ExportPlot renders a single layer's paths as a top-view image. The
// format is chosen from the file extension (png, svg, pdf).
func ExportPlot(path string, layer tray.Layer) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Layer %d (Z %.2f to %.2f mm)", layer.Index, layer.BottomZ, layer.TopZ)
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	for i, el := range layer.Elements {
		_, isGroup := el.(*geom.PathGroup)
		for _, pa := range el.Flatten() {
			line, err := pathLine(pa)
			if err != nil {
				return fmt.Errorf("layer %d: %w", layer.Index, err)
			}
			if isGroup {
				line.Color = color.RGBA{R: 158, G: 158, B: 158, A: 255}
				line.Width = vg.Points(0.5)
			} else {
				c := contourColor(i)
				line.Color = color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
				line.Width = vg.Points(1)
			}
			p.Add(line)
		}
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func pathLine(pa *geom.Path) (*plotter.Line, error) {
	pts := make(plotter.XYs, pa.Len())
	for i := range pa.Xs {
		pts[i] = plotter.XY{X: pa.Xs[i], Y: pa.Ys[i]}
	}
	return plotter.NewLine(pts)
}
