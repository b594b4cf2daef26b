// Package geom provides the toolpath geometry primitives shared by the
// tray builder and the exporters: ordered 3D point sequences, grouped
// infill passes, planar contour offsetting, and line infill.
package geom

import (
	"fmt"
	"math"
)

// Path is an ordered sequence of 3D points describing one toolpath.
// The three coordinate slices always have equal length.
type Path struct {
	Xs []float64 `json:"xs"`
	Ys []float64 `json:"ys"`
	Zs []float64 `json:"zs"`
}

// NewPath constructs a Path from three equal-length coordinate slices.
func NewPath(xs, ys, zs []float64) (*Path, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("path coordinate slices must have equal length, got x=%d y=%d z=%d",
			len(xs), len(ys), len(zs))
	}
	return &Path{Xs: xs, Ys: ys, Zs: zs}, nil
}

// Len returns the number of points in the path.
func (p *Path) Len() int { return len(p.Xs) }

// Length returns the total polyline length in mm.
func (p *Path) Length() float64 {
	var total float64
	for i := 1; i < len(p.Xs); i++ {
		dx := p.Xs[i] - p.Xs[i-1]
		dy := p.Ys[i] - p.Ys[i-1]
		dz := p.Zs[i] - p.Zs[i-1]
		total += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return total
}

// Closed reports whether the first and last points coincide.
func (p *Path) Closed() bool {
	n := p.Len()
	if n < 3 {
		return false
	}
	dx := p.Xs[n-1] - p.Xs[0]
	dy := p.Ys[n-1] - p.Ys[0]
	dz := p.Zs[n-1] - p.Zs[0]
	return math.Sqrt(dx*dx+dy*dy+dz*dz) < 1e-9
}

// Flatten implements Element.
func (p *Path) Flatten() []*Path { return []*Path{p} }

// PathGroup is an ordered collection of Paths forming one infill pass.
// ZHop and Retraction describe how the travel moves between member
// paths should be executed downstream.
type PathGroup struct {
	Paths      []*Path `json:"paths"`
	ZHop       bool    `json:"z_hop"`
	Retraction bool    `json:"retraction"`
}

// NewPathGroup constructs a PathGroup over the given paths.
func NewPathGroup(paths ...*Path) *PathGroup {
	return &PathGroup{Paths: paths}
}

// Flatten implements Element.
func (g *PathGroup) Flatten() []*Path { return g.Paths }

// Element is one entry of a generated toolpath sequence: either a
// single Path or a PathGroup.
type Element interface {
	// Flatten returns the paths the element contributes, in order.
	Flatten() []*Path
}
