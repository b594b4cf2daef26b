package tray

import (
	"testing"

	"github.com/ys4i/wavetray/internal/model"
)

func TestSummarize(t *testing.T) {
	p := model.DefaultParams()
	p.LayerCount = 3
	p.WaveSampleCount = 41
	p.HoleSampleCount = 24
	p.HoleLayerLimit = 1
	res, err := Build(p)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	summaries := Summarize(res)
	if len(summaries) != p.LayerCount {
		t.Fatalf("expected %d summaries, got %d", p.LayerCount, len(summaries))
	}

	first := summaries[0]
	if first.Contours != 3 {
		t.Errorf("holed layer should count 3 contours, got %d", first.Contours)
	}
	if first.InfillSegments == 0 {
		t.Error("expected infill segments on the holed layer")
	}
	if first.TotalLength <= first.InfillLength {
		t.Error("total length must include contour length on top of infill")
	}
	if first.MinWallRadius <= 0 || first.MaxWallRadius < first.MinWallRadius {
		t.Errorf("wall radius range looks wrong: [%g, %g]", first.MinWallRadius, first.MaxWallRadius)
	}

	for _, s := range summaries[1:] {
		if s.Contours != 1 {
			t.Errorf("layer %d: expected only the outer wall, got %d contours", s.Layer, s.Contours)
		}
		if s.InfillSegments != 0 {
			t.Errorf("layer %d: expected no infill, got %d segments", s.Layer, s.InfillSegments)
		}
	}

	for i, s := range summaries {
		wantBottom := float64(i) * p.LayerHeight
		if s.BottomZ != wantBottom || s.TopZ != wantBottom+p.LayerHeight {
			t.Errorf("layer %d: Z range [%g, %g] unexpected", i, s.BottomZ, s.TopZ)
		}
	}
}
