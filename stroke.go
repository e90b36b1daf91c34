package vgfx

// LineCap is the shape drawn at the open ends of a stroked path.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapSquare
	LineCapRound
)

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

// Stroke defines the style used to offset a path into a fill outline.
type Stroke struct {
	Paint      Paint
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a Stroke with default settings: a solid 1-pixel
// line with butt caps and miter joins limited at 4.0 (the common SVG
// default).
func DefaultStroke() Stroke {
	return Stroke{
		Paint:      SolidPaint(RGBA{R: 0, G: 0, B: 0, A: 1}),
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins, degrading every join
// to a bevel.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithPaint returns a copy of the Stroke with the given paint.
func (s Stroke) WithPaint(p Paint) Stroke {
	s.Paint = p
	return s
}

// Thin returns a thin stroke (0.5 pixels).
func Thin() Stroke { return DefaultStroke().WithWidth(0.5) }

// Thick returns a thick stroke (3 pixels).
func Thick() Stroke { return DefaultStroke().WithWidth(3.0) }

// Bold returns a bold stroke (5 pixels).
func Bold() Stroke { return DefaultStroke().WithWidth(5.0) }

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// SquareStroke returns a stroke with square caps.
func SquareStroke() Stroke {
	return DefaultStroke().WithCap(LineCapSquare)
}
