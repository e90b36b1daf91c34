// Package vgfx implements the rendering core of an interactive 2D vector
// graphics editor: it turns transformed Bezier paths carrying fill, stroke,
// and outline attributes into a stream of GPU draw calls, reusing work
// across frames through a screen-space cache.
//
// # Scope
//
// The package tree covers, leaf first:
//
//	vgfx            fixed-point and float geometry primitives
//	vgfx/path       the path command model and its spatial queries
//	vgfx/builder    clipping, monotone conversion, flattening, stroking
//	vgfx/tile       the tiling engine (coverage per screen cell)
//	vgfx/draw       assembly of tiler output into GPU-ready Drawables
//	vgfx/rcache     the screen-space viewport cache
//	vgfx/batch      fixed-capacity GPU buffer packing
//	vgfx/gpu        the device abstraction the host supplies
//	vgfx/shader     shader contract documentation
//	vgfx/renderer   the top-level per-frame API
//
// Out of scope: the document/scene model, input handling, font shaping and
// image decoding (only the texture-upload contract matters), host windowing
// and GPU device creation, and editor UI chrome beyond handle/overlay
// primitives.
//
// # Coordinate system
//
// Scene space uses float64 coordinates with Y increasing downward, matching
// the host document's convention. The tiler works in Fixed24_8
// pixel/subpixel coordinates for deterministic cell traversal; GPU-facing
// buffers pack float32 values.
package vgfx
