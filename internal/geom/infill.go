package geom

import (
	"fmt"
	"math"
	"sort"
)

// infillEdge is one contour edge rotated into the hatch frame.
type infillEdge struct {
	x0, y0, x1, y1 float64
}

// LineInfill fills the even-odd interior of the given closed contours
// with parallel hatch lines spaced spacing mm apart, rotated by angle
// radians from the X axis. Each clipped segment becomes a two-point
// Path at the top Z of the contour set; scanlines alternate direction
// to shorten travel between segments.
func LineInfill(contours []*Path, spacing, angle float64) (*PathGroup, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("infill spacing must be > 0, got %g", spacing)
	}
	if len(contours) == 0 {
		return nil, fmt.Errorf("infill requires at least one contour")
	}

	// Rotate all contours by -angle so hatch lines become horizontal
	// scanlines, then rotate the clipped segments back.
	cosA := math.Cos(-angle)
	sinA := math.Sin(-angle)

	var edges []infillEdge
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	z := math.Inf(-1)

	for _, c := range contours {
		n := c.Len()
		if n < 3 {
			return nil, fmt.Errorf("infill contour requires at least 3 points, got %d", n)
		}
		for i := 0; i < n; i++ {
			if c.Zs[i] > z {
				z = c.Zs[i]
			}
			j := (i + 1) % n // implicit closing edge
			x0 := c.Xs[i]*cosA - c.Ys[i]*sinA
			y0 := c.Xs[i]*sinA + c.Ys[i]*cosA
			x1 := c.Xs[j]*cosA - c.Ys[j]*sinA
			y1 := c.Xs[j]*sinA + c.Ys[j]*cosA
			if math.Abs(y1-y0) < 1e-12 {
				// Horizontal edges never cross a scanline
				continue
			}
			edges = append(edges, infillEdge{x0: x0, y0: y0, x1: x1, y1: y1})
			if math.Min(y0, y1) < minY {
				minY = math.Min(y0, y1)
			}
			if math.Max(y0, y1) > maxY {
				maxY = math.Max(y0, y1)
			}
		}
	}

	group := NewPathGroup()
	if len(edges) == 0 || maxY-minY < spacing {
		return group, nil
	}

	// Center the scanline band inside the bounding range
	start := minY + math.Mod(maxY-minY, spacing)/2
	if start <= minY {
		start = minY + spacing/2
	}

	cosB := math.Cos(angle)
	sinB := math.Sin(angle)
	flip := false

	for y := start; y < maxY; y += spacing {
		var xs []float64
		for _, e := range edges {
			// Half-open crossing rule keeps shared vertices counted once
			if (e.y0 <= y) != (e.y1 <= y) {
				t := (y - e.y0) / (e.y1 - e.y0)
				xs = append(xs, e.x0+t*(e.x1-e.x0))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)

		for k := 0; k+1 < len(xs); k += 2 {
			xa, xb := xs[k], xs[k+1]
			if xb-xa < 1e-9 {
				continue
			}
			if flip {
				xa, xb = xb, xa
			}
			seg := &Path{
				Xs: []float64{xa*cosB - y*sinB, xb*cosB - y*sinB},
				Ys: []float64{xa*sinB + y*cosB, xb*sinB + y*cosB},
				Zs: []float64{z, z},
			}
			group.Paths = append(group.Paths, seg)
		}
		flip = !flip
	}
	return group, nil
}
