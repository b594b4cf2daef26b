package geom

import (
	"fmt"
	"math"
)

// Offset returns a copy of a closed path shifted in its local XY plane
// by dist: positive distances move a counter-clockwise contour outward,
// negative distances move it inward. For each vertex the average
// outward normal of the two adjacent edges is computed and the vertex
// is shifted along that normal. Z values are preserved per vertex.
//
// Self-intersecting results for offsets larger than the local feature
// size are not repaired.
func Offset(path *Path, dist float64) (*Path, error) {
	n := path.Len()
	if n < 3 {
		return nil, fmt.Errorf("offset requires at least 3 points, got %d", n)
	}

	// Contours sampled over a full revolution repeat their first point;
	// wrap around the distinct points so the seam gets two-sided normals.
	wrap := n
	closed := path.Closed()
	if closed {
		wrap = n - 1
	}

	out := &Path{
		Xs: make([]float64, n),
		Ys: make([]float64, n),
		Zs: make([]float64, n),
	}
	for i := 0; i < wrap; i++ {
		prev := (i - 1 + wrap) % wrap
		next := (i + 1) % wrap

		// Edge vectors into and out of the vertex
		e1x := path.Xs[i] - path.Xs[prev]
		e1y := path.Ys[i] - path.Ys[prev]
		e2x := path.Xs[next] - path.Xs[i]
		e2y := path.Ys[next] - path.Ys[i]

		// Right-of-travel normals, outward for a CCW contour
		n1x, n1y := normalize(e1y, -e1x)
		n2x, n2y := normalize(e2y, -e2x)

		nx := (n1x + n2x) / 2
		ny := (n1y + n2y) / 2
		nLen := math.Sqrt(nx*nx + ny*ny)
		if nLen > 1e-9 {
			nx /= nLen
			ny /= nLen
		}

		out.Xs[i] = path.Xs[i] + nx*dist
		out.Ys[i] = path.Ys[i] + ny*dist
		out.Zs[i] = path.Zs[i]
	}
	if closed {
		out.Xs[n-1] = out.Xs[0]
		out.Ys[n-1] = out.Ys[0]
		out.Zs[n-1] = path.Zs[n-1]
	}
	return out, nil
}

// normalize returns a unit vector in the given direction.
func normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length < 1e-9 {
		return 0, 0
	}
	return x / length, y / length
}
