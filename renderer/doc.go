// Package renderer is the top-level entry point: BeginFrame, Draw*, and
// EndFrame form the host-facing frame lifecycle. It owns no GPU state of
// its own beyond what vgfx/gpu.Device wraps, and
// composes vgfx/rcache, vgfx/tile, vgfx/builder, vgfx/draw, and
// vgfx/batch into the per-path pipeline: tile, assemble, cache, pack.
//
// Grounded on render/renderer.go's Renderer/RendererCapabilities
// interface shape (stateless-between-calls, not-thread-safe contract)
// and render/layers.go's back-to-front compositing discipline, both
// adapted here since neither survives as a standalone package: this
// renderer's Render equivalent is the BeginFrame/Draw*/EndFrame
// sequence rather than a single Render(target, scene) call, because the
// document drives drawing incrementally rather than handing over a
// complete scene graph.
package renderer
