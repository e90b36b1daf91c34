package renderer

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/draw"
	"github.com/inkwell/vgfx/shader"
)

// DebugTextRun is one direction-uniform span of a debug overlay label,
// ready for the host's glyph rasterizer to lay out left-to-right or
// right-to-left in isolation.
type DebugTextRun struct {
	Text      string
	Direction bidi.Direction
}

// DebugText segments text into bidi runs for the __debug_text overlay
// entry point. It is a no-op while debug is disabled, matching every
// __debug_* entry point's "compiles to nothing in release" contract.
func (r *Renderer) DebugText(text string) []DebugTextRun {
	if !r.debugOn || text == "" {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []DebugTextRun{{Text: text, Direction: bidi.LeftToRight}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []DebugTextRun{{Text: text, Direction: bidi.LeftToRight}}
	}
	runs := make([]DebugTextRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runs = append(runs, DebugTextRun{Text: run.String(), Direction: run.Direction()})
	}
	return runs
}

// DebugHandle is the __debug_handle entry point: a square manipulation
// grip centered at center, sized and colored per Settings.UIHandleSize
// and Settings.UIPrimaryColor. Returns the zero Primitive and false
// while debug is disabled.
func (r *Renderer) DebugHandle(center vgfx.Point) (shader.Primitive, bool) {
	if !r.debugOn {
		return shader.Primitive{}, false
	}
	half := float32(r.settings.UIHandleSize / 2)
	c := r.settings.UIPrimaryColor
	return shader.Primitive{
		Attr1: [2]float32{float32(center.X) - half, float32(center.Y) - half},
		Attr2: [2]float32{float32(r.settings.UIHandleSize), float32(r.settings.UIHandleSize)},
		Attr3: shader.PackAttr3(shader.PrimitiveRect),
		Color: draw.PackColor(to255(c.R), to255(c.G), to255(c.B), to255(c.A)),
	}, true
}

// DebugLine is the __debug_line entry point: a line segment from a to b
// at the renderer's configured UI line width and primary color. Returns
// the zero Primitive and false while debug is disabled.
func (r *Renderer) DebugLine(a, b vgfx.Point) (shader.Primitive, bool) {
	if !r.debugOn {
		return shader.Primitive{}, false
	}
	c := r.settings.UIPrimaryColor
	return shader.Primitive{
		Attr1: [2]float32{float32(a.X), float32(a.Y)},
		Attr2: [2]float32{float32(b.X), float32(b.Y)},
		Attr3: shader.PackAttr3(shader.PrimitiveLine),
		Color: draw.PackColor(to255(c.R), to255(c.G), to255(c.B), to255(c.A)),
	}, true
}
