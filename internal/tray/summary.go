package tray

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ys4i/wavetray/internal/geom"
)

// LayerSummary aggregates per-layer statistics for reports.
type LayerSummary struct {
	Layer          int     `json:"layer"`
	BottomZ        float64 `json:"bottom_z"`
	TopZ           float64 `json:"top_z"`
	Contours       int     `json:"contours"`        // Standalone wall/hole/offset paths
	InfillSegments int     `json:"infill_segments"` // Paths inside infill groups
	InfillLength   float64 `json:"infill_length"`   // mm
	TotalLength    float64 `json:"total_length"`    // mm, all paths
	MinWallRadius  float64 `json:"min_wall_radius"` // mm
	MaxWallRadius  float64 `json:"max_wall_radius"` // mm
}

// Summarize computes one summary per layer of a build result.
func Summarize(res *Result) []LayerSummary {
	summaries := make([]LayerSummary, len(res.Layers))
	for i, layer := range res.Layers {
		s := LayerSummary{
			Layer:   layer.Index,
			BottomZ: layer.BottomZ,
			TopZ:    layer.TopZ,
		}
		for ei, el := range layer.Elements {
			switch e := el.(type) {
			case *geom.Path:
				s.Contours++
				s.TotalLength += e.Length()
				if ei == 0 {
					s.MinWallRadius, s.MaxWallRadius = wallRadiusRange(e)
				}
			case *geom.PathGroup:
				for _, path := range e.Paths {
					s.InfillSegments++
					l := path.Length()
					s.InfillLength += l
					s.TotalLength += l
				}
			}
		}
		summaries[i] = s
	}
	return summaries
}

// wallRadiusRange returns the min and max distance of a contour's
// points from the Z axis.
func wallRadiusRange(p *geom.Path) (min, max float64) {
	if p.Len() == 0 {
		return 0, 0
	}
	radii := make([]float64, p.Len())
	for i := range p.Xs {
		radii[i] = math.Sqrt(p.Xs[i]*p.Xs[i] + p.Ys[i]*p.Ys[i])
	}
	return floats.Min(radii), floats.Max(radii)
}
