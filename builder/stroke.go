package builder

import (
	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/internal/stroke"
	"github.com/inkwell/vgfx/path"
)

// capToInternal maps the public vgfx.LineCap enum (Butt, Square, Round) to
// internal/stroke's own enum (Butt, Round, Square). The two orderings
// differ, so this must be an explicit table rather than a numeric cast.
func capToInternal(c vgfx.LineCap) stroke.LineCap {
	switch c {
	case vgfx.LineCapSquare:
		return stroke.LineCapSquare
	case vgfx.LineCapRound:
		return stroke.LineCapRound
	default:
		return stroke.LineCapButt
	}
}

// joinToInternal maps the public vgfx.LineJoin enum (Miter, Bevel, Round) to
// internal/stroke's own enum (Miter, Round, Bevel).
func joinToInternal(j vgfx.LineJoin) stroke.LineJoin {
	switch j {
	case vgfx.LineJoinBevel:
		return stroke.LineJoinBevel
	case vgfx.LineJoinRound:
		return stroke.LineJoinRound
	default:
		return stroke.LineJoinMiter
	}
}

// StrokeToFill expands s.Width worth of offset outline around p, producing
// a new fillable path. It delegates the actual join/cap/offset geometry to
// internal/stroke.StrokeExpander, translating between vgfx.Path's
// verb/point encoding and that package's PathElement interface, and
// between the two packages' differently-ordered LineCap/LineJoin enums.
func StrokeToFill(p *path.Path, s vgfx.Stroke, tolerance float64) *path.Path {
	elements := toStrokeElements(p)

	expander := stroke.NewStrokeExpander(stroke.Stroke{
		Width:      s.Width,
		Cap:        capToInternal(s.Cap),
		Join:       joinToInternal(s.Join),
		MiterLimit: s.MiterLimit,
	})
	if tolerance > 0 {
		expander.SetTolerance(tolerance)
	}

	return fromStrokeElements(expander.Expand(elements))
}

func toStrokeElements(p *path.Path) []stroke.PathElement {
	pts := p.Points()
	if len(pts) == 0 {
		return nil
	}

	out := make([]stroke.PathElement, 0, len(pts)+1)
	out = append(out, stroke.MoveTo{Point: toStrokePoint(pts[0])})

	for _, seg := range p.Segments() {
		switch seg.Verb {
		case path.Line:
			out = append(out, stroke.LineTo{Point: toStrokePoint(seg.End)})
		case path.Quadratic:
			out = append(out, stroke.QuadTo{
				Control: toStrokePoint(seg.Ctrl1),
				Point:   toStrokePoint(seg.End),
			})
		case path.Cubic:
			out = append(out, stroke.CubicTo{
				Control1: toStrokePoint(seg.Ctrl1),
				Control2: toStrokePoint(seg.Ctrl2),
				Point:    toStrokePoint(seg.End),
			})
		}
	}
	if p.Closed() {
		out = append(out, stroke.Close{})
	}
	return out
}

func fromStrokeElements(elements []stroke.PathElement) *path.Path {
	out := path.New()
	for _, el := range elements {
		switch e := el.(type) {
		case stroke.MoveTo:
			out.MoveTo(fromStrokePoint(e.Point))
		case stroke.LineTo:
			out.LineTo(fromStrokePoint(e.Point), false)
		case stroke.QuadTo:
			out.QuadraticTo(fromStrokePoint(e.Control), fromStrokePoint(e.Point), false)
		case stroke.CubicTo:
			out.CubicTo(fromStrokePoint(e.Control1), fromStrokePoint(e.Control2), fromStrokePoint(e.Point), false)
		case stroke.Close:
			out.Close()
		}
	}
	return out
}

func toStrokePoint(p vgfx.Point) stroke.Point   { return stroke.Point{X: p.X, Y: p.Y} }
func fromStrokePoint(p stroke.Point) vgfx.Point { return vgfx.Point{X: p.X, Y: p.Y} }
