package tray

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/ys4i/wavetray/internal/geom"
	"github.com/ys4i/wavetray/internal/model"
)

// Layer holds the toolpath elements generated for one layer, in the
// fixed order: outer wall, then for holed layers the hole wall, the
// inner hole offset, and the infill pass when the annulus admits one.
type Layer struct {
	Index    int
	BottomZ  float64
	TopZ     float64
	Elements []geom.Element
}

// Result is the output of a build: one Layer per layer index.
type Result struct {
	Layers []Layer
}

// Elements flattens the result into the ordered toolpath sequence
// consumed by the exporters.
func (r *Result) Elements() []geom.Element {
	var out []geom.Element
	for _, l := range r.Layers {
		out = append(out, l.Elements...)
	}
	return out
}

// Build generates the full wave tray toolpath. The computation is
// deterministic: identical Params produce identical Results.
func Build(p model.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	waveAngles := revolution(p.WaveSampleCount)
	holeAngles := revolution(p.HoleSampleCount)

	res := &Result{Layers: make([]Layer, p.LayerCount)}
	for i := 0; i < p.LayerCount; i++ {
		layer, err := buildLayer(p, i, waveAngles, holeAngles)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		res.Layers[i] = layer
	}
	return res, nil
}

// BuildParallel generates the same toolpath as Build using the given
// number of workers. Layers depend only on Params and the shared angle
// arrays, so each worker writes into its own slot of the pre-sized
// layer slice and ordering is preserved by construction.
func BuildParallel(p model.Params, workers int) (*Result, error) {
	if workers <= 1 {
		return Build(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if workers > p.LayerCount {
		workers = p.LayerCount
	}

	waveAngles := revolution(p.WaveSampleCount)
	holeAngles := revolution(p.HoleSampleCount)

	layers := make([]Layer, p.LayerCount)
	errs := make([]error, p.LayerCount)
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				layers[i], errs[i] = buildLayer(p, i, waveAngles, holeAngles)
			}
		}()
	}
	for i := 0; i < p.LayerCount; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return &Result{Layers: layers}, nil
}

// buildLayer computes all elements of a single layer.
func buildLayer(p model.Params, index int, waveAngles, holeAngles []float64) (Layer, error) {
	bottom := float64(index) * p.LayerHeight
	top := bottom + p.LayerHeight

	layerZ := make([]float64, p.WaveSampleCount)
	floats.Span(layerZ, bottom, top)

	totalHeight := p.TotalHeight()
	phase := math.Pi * float64(index)

	xs := make([]float64, p.WaveSampleCount)
	ys := make([]float64, p.WaveSampleCount)
	minWaveRadius := math.Inf(1)
	for j, a := range waveAngles {
		h := layerZ[j] / totalHeight
		r := ProfileRadius(p, h) + p.WaveAmplitude*math.Sin(a*p.WaveFrequency+phase)
		if r < minWaveRadius {
			minWaveRadius = r
		}
		xs[j] = r * math.Cos(a)
		ys[j] = r * math.Sin(a)
	}
	wall := &geom.Path{Xs: xs, Ys: ys, Zs: layerZ}

	layer := Layer{
		Index:    index,
		BottomZ:  bottom,
		TopZ:     top,
		Elements: []geom.Element{wall},
	}
	if index >= p.HoleLayerLimit {
		return layer, nil
	}

	// Hole wall and its inward offset sit at the layer top
	holeZ := p.LayerHeight * float64(index+1)
	hole := circlePath(p.HoleRadius, holeAngles, holeZ)
	inner, err := geom.Offset(hole, -p.HoleWallOffset)
	if err != nil {
		return Layer{}, err
	}
	layer.Elements = append(layer.Elements, hole, inner)

	var fill *geom.PathGroup
	switch p.InfillMode {
	case model.InfillConcentric:
		fill = concentricFill(p, minWaveRadius, holeAngles, holeZ)
	default:
		angle := p.InfillBaseAngle + p.InfillAngleStep*float64(index)
		fill, err = geom.LineInfill([]*geom.Path{wall, hole}, p.InfillSpacing, angle)
		if err != nil {
			return Layer{}, err
		}
		fill.ZHop = true
		fill.Retraction = true
	}
	if fill != nil && len(fill.Paths) > 0 {
		layer.Elements = append(layer.Elements, fill)
	}
	return layer, nil
}

// concentricFill builds nested rings between the hole and the
// narrowest point of the wave wall. An annulus too narrow to hold even
// one ring yields nil rather than an error.
func concentricFill(p model.Params, minWaveRadius float64, angles []float64, z float64) *geom.PathGroup {
	inner := p.HoleRadius + p.ConcentricClearance
	outer := minWaveRadius - p.ConcentricClearance
	if outer-inner <= p.ConcentricPitch {
		return nil
	}

	// Rings are contiguous at constant radius, so travel between them
	// needs neither a lift nor a feed pause.
	fill := geom.NewPathGroup()
	for r := inner; r <= outer; r += p.ConcentricPitch {
		fill.Paths = append(fill.Paths, circlePath(r, angles, z))
	}
	return fill
}

// circlePath samples a constant-Z circle over the given angle array.
func circlePath(radius float64, angles []float64, z float64) *geom.Path {
	n := len(angles)
	c := &geom.Path{
		Xs: make([]float64, n),
		Ys: make([]float64, n),
		Zs: make([]float64, n),
	}
	for i, a := range angles {
		c.Xs[i] = radius * math.Cos(a)
		c.Ys[i] = radius * math.Sin(a)
		c.Zs[i] = z
	}
	return c
}

// revolution returns count angles evenly spaced over [0, 2π], both
// endpoints included so sampled contours close exactly.
func revolution(count int) []float64 {
	return floats.Span(make([]float64, count), 0, 2*math.Pi)
}
