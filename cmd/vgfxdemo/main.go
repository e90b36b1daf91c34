// Command vgfxdemo exercises the renderer's begin_frame/draw*/end_frame
// cycle against a CPU-only device handle and a null resource manager,
// printing what each frame produced. It is a harness for manually
// checking the pipeline end to end, not a GPU-backed viewer.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/gpu"
	"github.com/inkwell/vgfx/path"
	"github.com/inkwell/vgfx/renderer"
)

func main() {
	vgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := renderer.New(gpu.NullDeviceHandle{}, renderer.NullResourceManager{},
		renderer.WithFlatteningTolerance(0.1),
		renderer.WithStrokingTolerance(0.1),
	)
	r.SetDebugEnabled(true)

	square := path.New()
	square.MoveTo(vgfx.Pt(40, 40))
	square.LineTo(vgfx.Pt(360, 40), false)
	square.LineTo(vgfx.Pt(360, 360), false)
	square.LineTo(vgfx.Pt(40, 360), false)
	square.Close()

	circle := path.New()
	circle.MoveTo(vgfx.Pt(300, 200))
	k := 0.5522847498 * 80
	circle.CubicTo(vgfx.Pt(300, 200+k), vgfx.Pt(220+k, 280), vgfx.Pt(220, 280), false)
	circle.CubicTo(vgfx.Pt(220-k, 280), vgfx.Pt(140, 200+k), vgfx.Pt(140, 200), false)
	circle.CubicTo(vgfx.Pt(140, 200-k), vgfx.Pt(220-k, 120), vgfx.Pt(220, 120), false)
	circle.CubicTo(vgfx.Pt(220+k, 120), vgfx.Pt(300, 200-k), vgfx.Pt(300, 200), false)
	circle.Close()

	viewport := renderer.Viewport{
		Size:       [2]int{400, 400},
		Position:   vgfx.Pt(0, 0),
		Zoom:       1.0,
		DPR:        1.0,
		Background: vgfx.RGB(0.1, 0.1, 0.12),
	}

	for frame := 0; frame < 2; frame++ {
		r.BeginFrame(renderer.RenderOptions{Viewport: viewport, CacheGridSubdivisions: 8})

		r.DrawPath(1, square, vgfx.Fill{Paint: vgfx.SolidPaint(vgfx.RGB(0.2, 0.6, 0.9)), Rule: vgfx.FillRuleNonZero})
		r.DrawPath(2, circle, vgfx.Fill{Paint: vgfx.TexturePaint(99), Rule: vgfx.FillRuleNonZero})
		r.DrawStroke(3, square, vgfx.Stroke{
			Paint:      vgfx.SolidPaint(vgfx.RGB(0, 0, 0)),
			Width:      3.0,
			Cap:        vgfx.LineCapRound,
			Join:       vgfx.LineJoinRound,
			MiterLimit: 4.0,
		})

		flushed := r.EndFrame()

		var tileVerts, fillVerts int
		for _, batch := range flushed {
			tileVerts += len(batch.Tile.Vertices)
			fillVerts += len(batch.Fill.Vertices)
		}
		stats := r.Stats()
		fmt.Printf("frame %d: %d batch(es), %d tile vertices, %d fill vertices, resource misses %d\n",
			frame, len(flushed), tileVerts, fillVerts, stats.Counters.ResourceMisses)

		if frame == 0 {
			if handle, ok := r.DebugHandle(vgfx.Pt(360, 40)); ok {
				fmt.Printf("frame %d: debug handle primitive at %v\n", frame, handle.Attr1)
			}
			if line, ok := r.DebugLine(vgfx.Pt(40, 40), vgfx.Pt(360, 360)); ok {
				fmt.Printf("frame %d: debug line primitive %v -> %v\n", frame, line.Attr1, line.Attr2)
			}
			for _, run := range r.DebugText("select object 2 (אבג)") {
				fmt.Printf("frame %d: debug text run %q dir=%v\n", frame, run.Text, run.Direction)
			}
		}

		// Second frame reuses frame one's cached drawables: nothing moved
		// and nothing was invalidated, so every DrawPath above should hit
		// the viewport cache instead of retiling.
	}
}
