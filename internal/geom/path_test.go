package geom

import (
	"math"
	"testing"
)

func TestNewPathEqualLengths(t *testing.T) {
	p, err := NewPath([]float64{0, 1}, []float64{0, 0}, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("expected 2 points, got %d", p.Len())
	}
}

func TestNewPathMismatchedLengths(t *testing.T) {
	_, err := NewPath([]float64{0, 1}, []float64{0}, []float64{0, 0})
	if err == nil {
		t.Fatal("expected error for mismatched slice lengths")
	}
}

func TestPathLength(t *testing.T) {
	p := &Path{
		Xs: []float64{0, 3, 3},
		Ys: []float64{0, 4, 4},
		Zs: []float64{0, 0, 2},
	}
	if got := p.Length(); math.Abs(got-7.0) > 1e-9 {
		t.Errorf("expected length 7, got %g", got)
	}
}

func TestPathClosed(t *testing.T) {
	closed := &Path{
		Xs: []float64{1, 0, -1, 1},
		Ys: []float64{0, 1, 0, 0},
		Zs: []float64{0, 0, 0, 0},
	}
	if !closed.Closed() {
		t.Error("expected closed path")
	}
	open := &Path{
		Xs: []float64{0, 1},
		Ys: []float64{0, 1},
		Zs: []float64{0, 0},
	}
	if open.Closed() {
		t.Error("expected open path")
	}
}

func TestFlatten(t *testing.T) {
	p := &Path{Xs: []float64{0}, Ys: []float64{0}, Zs: []float64{0}}
	if got := p.Flatten(); len(got) != 1 || got[0] != p {
		t.Error("path should flatten to itself")
	}

	g := NewPathGroup(p, p)
	if got := g.Flatten(); len(got) != 2 {
		t.Errorf("expected 2 paths from group, got %d", len(got))
	}
}
