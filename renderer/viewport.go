package renderer

import "github.com/inkwell/vgfx"

// Viewport is the visible document-to-screen mapping for one frame.
type Viewport struct {
	Size       [2]int
	Position   vgfx.Point
	Zoom       float64
	DPR        float64
	Background vgfx.RGBA
}

// VisibleRect returns the document-space rect this viewport shows,
// derived from Position, Size, and Zoom.
func (v Viewport) VisibleRect() vgfx.Rect {
	w := float64(v.Size[0]) / v.Zoom
	h := float64(v.Size[1]) / v.Zoom
	return vgfx.NewRect(v.Position, vgfx.Pt(v.Position.X+w, v.Position.Y+h))
}

// RenderOptions configures one BeginFrame call: the active viewport and
// the cache policy for this frame.
type RenderOptions struct {
	Viewport Viewport

	// CacheGridSubdivisions is the per-axis cell count SetGridRect uses
	// when the viewport has changed since the previous frame.
	CacheGridSubdivisions int

	// IgnoreCache forces every drawable to be retiled and reassembled
	// this frame regardless of cache validity, for debugging or when the
	// host knows every resource changed.
	IgnoreCache bool
}
