// Package gcode turns a generated wave tray toolpath into a textual
// toolpath program using a configurable post-processor profile.
package gcode

import (
	"fmt"
	"strings"

	"github.com/ys4i/wavetray/internal/geom"
	"github.com/ys4i/wavetray/internal/model"
	"github.com/ys4i/wavetray/internal/tray"
)

// Settings holds the motion configuration for the generator.
type Settings struct {
	Profile    string  `json:"profile"`
	FeedRate   float64 `json:"feed_rate"`   // Printing feed rate mm/min
	TravelRate float64 `json:"travel_rate"` // Travel feed rate mm/min
	ZHopHeight float64 `json:"z_hop_height"`
	SafeZ      float64 `json:"safe_z"` // Final retract clearance above the part
}

// DefaultSettings returns motion defaults that suit the stock tray.
func DefaultSettings() Settings {
	return Settings{
		Profile:    "Generic",
		FeedRate:   1200.0,
		TravelRate: 4800.0,
		ZHopHeight: 0.4,
		SafeZ:      5.0,
	}
}

// Generator produces program text from a build result.
type Generator struct {
	Settings Settings
	profile  Profile
}

func New(settings Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  GetProfile(settings.Profile),
	}
}

// Generate walks the layer sequence in order and emits one program.
// Output is fully determined by the result and the settings.
func (g *Generator) Generate(res *tray.Result, params model.Params) string {
	var b strings.Builder

	g.writeHeader(&b, params)

	for _, layer := range res.Layers {
		b.WriteString(g.comment(fmt.Sprintf("--- Layer %d (Z %s to %s) ---",
			layer.Index, g.format(layer.BottomZ), g.format(layer.TopZ))))
		for _, el := range layer.Elements {
			switch e := el.(type) {
			case *geom.Path:
				g.writePath(&b, e, false)
			case *geom.PathGroup:
				g.writeGroup(&b, e)
			}
		}
	}

	g.writeFooter(&b, params)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, params model.Params) {
	p := g.profile

	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" WaveTray toolpath — %d layers, %.1fmm tall\n",
		params.LayerCount, params.TotalHeight()))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Base radius: %.1fmm, growth: %.1fmm, wave: %.1fmm x %.1f cycles\n",
		params.BaseRadius, params.RadialGrowth, params.WaveAmplitude, params.WaveFrequency))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Infill: %s, Feed: %.0f mm/min, Travel: %.0f mm/min\n",
		params.InfillMode, g.Settings.FeedRate, g.Settings.TravelRate))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Profile: %s\n", p.Name))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder, params model.Params) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(p.CommentPrefix + " === Job complete ===\n")
	for _, code := range p.EndCode {
		code = strings.ReplaceAll(code, "[SafeZ]", g.format(params.TotalHeight()+g.Settings.SafeZ))
		b.WriteString(code + "\n")
	}
}

// writePath travels to the path start and feeds through its points.
// With zHop the approach travel detours above the target Z.
func (g *Generator) writePath(b *strings.Builder, path *geom.Path, zHop bool) {
	if path.Len() == 0 {
		return
	}
	p := g.profile

	if zHop {
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.TravelMove,
			g.format(path.Zs[0]+g.Settings.ZHopHeight), g.format(g.Settings.TravelRate)))
	}
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.TravelMove,
		g.format(path.Xs[0]), g.format(path.Ys[0]), g.format(g.Settings.TravelRate)))
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.TravelMove, g.format(path.Zs[0])))

	for i := 1; i < path.Len(); i++ {
		b.WriteString(fmt.Sprintf("%s X%s Y%s Z%s F%s\n", p.FeedMove,
			g.format(path.Xs[i]), g.format(path.Ys[i]), g.format(path.Zs[i]),
			g.format(g.Settings.FeedRate)))
	}
}

// writeGroup emits each member path, honoring the group's travel tags
// between members. The first member is reached like a standalone path.
func (g *Generator) writeGroup(b *strings.Builder, group *geom.PathGroup) {
	p := g.profile

	b.WriteString(g.comment(fmt.Sprintf("Infill pass: %d segments, z-hop=%t, retraction=%t",
		len(group.Paths), group.ZHop, group.Retraction)))

	for i, path := range group.Paths {
		retract := group.Retraction && i > 0 && p.Retract != ""
		if retract {
			b.WriteString(p.Retract + "\n")
		}
		g.writePath(b, path, group.ZHop && i > 0)
		if retract && p.Unretract != "" {
			b.WriteString(p.Unretract + "\n")
		}
	}
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}
