package geom

import (
	"math"
	"testing"
)

// ccwCircle samples a counter-clockwise circle with both endpoints
// included, matching how the builder samples contours.
func ccwCircle(radius float64, count int, z float64) *Path {
	p := &Path{
		Xs: make([]float64, count),
		Ys: make([]float64, count),
		Zs: make([]float64, count),
	}
	for i := 0; i < count; i++ {
		a := 2 * math.Pi * float64(i) / float64(count-1)
		p.Xs[i] = radius * math.Cos(a)
		p.Ys[i] = radius * math.Sin(a)
		p.Zs[i] = z
	}
	return p
}

func TestOffsetInward(t *testing.T) {
	circle := ccwCircle(10, 200, 1.5)
	inner, err := Offset(circle, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Len() != circle.Len() {
		t.Fatalf("expected %d points, got %d", circle.Len(), inner.Len())
	}
	if !inner.Closed() {
		t.Error("offsetting a closed contour must keep it closed")
	}
	for i := 0; i < inner.Len(); i++ {
		r := math.Sqrt(inner.Xs[i]*inner.Xs[i] + inner.Ys[i]*inner.Ys[i])
		if math.Abs(r-9) > 0.01 {
			t.Fatalf("point %d: expected radius ~9, got %g", i, r)
		}
		if inner.Zs[i] != 1.5 {
			t.Fatalf("point %d: Z should be preserved, got %g", i, inner.Zs[i])
		}
	}
}

func TestOffsetOutward(t *testing.T) {
	circle := ccwCircle(10, 200, 0)
	outer, err := Offset(circle, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < outer.Len(); i++ {
		r := math.Sqrt(outer.Xs[i]*outer.Xs[i] + outer.Ys[i]*outer.Ys[i])
		if math.Abs(r-12) > 0.01 {
			t.Fatalf("point %d: expected radius ~12, got %g", i, r)
		}
	}
}

func TestOffsetTooFewPoints(t *testing.T) {
	p := &Path{Xs: []float64{0, 1}, Ys: []float64{0, 0}, Zs: []float64{0, 0}}
	if _, err := Offset(p, 1); err == nil {
		t.Fatal("expected error for degenerate path")
	}
}
