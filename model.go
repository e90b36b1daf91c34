package vgfx

// PaintKind identifies which variant a Paint holds.
type PaintKind int

const (
	PaintSolid PaintKind = iota
	PaintSwatch
	PaintGradient
	PaintTexture
)

// Paint is a tagged variant over a solid color and three reference kinds
// resolved by an external resource manager (see the ResourceManager
// interface in package renderer). References are opaque 64-bit ids; vgfx
// never interprets them beyond passing them to the resource manager.
type Paint struct {
	Kind  PaintKind
	Color RGBA   // valid when Kind == PaintSolid
	ID    uint64 // valid when Kind is Swatch, Gradient, or Texture
}

// SolidPaint creates a Paint that draws a flat color with no resource
// lookup.
func SolidPaint(c RGBA) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// SwatchPaint references a named swatch color resolved by id.
func SwatchPaint(id uint64) Paint {
	return Paint{Kind: PaintSwatch, ID: id}
}

// GradientPaint references a gradient definition resolved by id.
func GradientPaint(id uint64) Paint {
	return Paint{Kind: PaintGradient, ID: id}
}

// TexturePaint references an image texture resolved by id.
func TexturePaint(id uint64) Paint {
	return Paint{Kind: PaintTexture, ID: id}
}

// IsSolid reports whether the paint can be resolved without consulting
// the resource manager.
func (p Paint) IsSolid() bool { return p.Kind == PaintSolid }

// FillRule selects which regions of a path's interior are considered
// covered when multiple subpaths or self-intersections overlap.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Fill pairs a paint with the rule used to determine path interior.
type Fill struct {
	Paint Paint
	Rule  FillRule
}

// DefaultFill returns an opaque black, non-zero-rule fill.
func DefaultFill() Fill {
	return Fill{Paint: SolidPaint(Black), Rule: FillRuleNonZero}
}

// Outline describes the editor-chrome overlay drawn on top of a
// selected path: its wireframe color, whether control vertices are
// rendered at all, and which vertex indices (if any) are highlighted
// as selected.
type Outline struct {
	Color         RGBA
	DrawVertices  bool
	SelectedIndex map[int]struct{}
}

// IsSelected reports whether vertex index i is in the selected set.
func (o Outline) IsSelected(i int) bool {
	if o.SelectedIndex == nil {
		return false
	}
	_, ok := o.SelectedIndex[i]
	return ok
}
