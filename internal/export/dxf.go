package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/ys4i/wavetray/internal/geom"
	"github.com/ys4i/wavetray/internal/tray"
)

// ExportDXF writes the layer contours as a DXF drawing, one DXF layer
// per tray layer. Contours become closed LWPOLYLINEs, infill segments
// open ones; Z is dropped since DXF consumers read the plates as 2D.
func ExportDXF(path string, res *tray.Result) error {
	if len(res.Layers) == 0 {
		return fmt.Errorf("no layers to export")
	}

	d := dxf.NewDrawing()
	for _, layer := range res.Layers {
		name := fmt.Sprintf("LAYER_%03d", layer.Index)
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add DXF layer %s: %w", name, err)
		}
		for _, el := range layer.Elements {
			for _, p := range el.Flatten() {
				if err := writePolyline(d, p); err != nil {
					return fmt.Errorf("layer %d: %w", layer.Index, err)
				}
			}
		}
	}
	return d.SaveAs(path)
}

func writePolyline(d *drawing.Drawing, p *geom.Path) error {
	if p.Len() < 2 {
		return nil
	}
	vertices := make([][]float64, p.Len())
	for i := range p.Xs {
		vertices[i] = []float64{p.Xs[i], p.Ys[i]}
	}
	_, err := d.LwPolyline(p.Closed(), vertices...)
	return err
}
