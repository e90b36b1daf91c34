package builder

import (
	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/path"
)

// CubicSeg is one monotone cubic Bezier segment. Linear input segments are
// encoded as degenerate cubics with P1 = P2 = P3 = End, so downstream
// consumers (vgfx/tile) only ever deal with one segment shape.
type CubicSeg struct {
	P0, P1, P2, P3 vgfx.Point
}

// MonotonePath is a path decomposed into segments that are each monotone
// in both x and y, the precondition the tiling engine's DDA traversal
// requires.
type MonotonePath struct {
	Segs []CubicSeg
}

// ToMonotone decomposes every segment of p into one or more monotone
// cubics, splitting at axis extrema and inflection points via
// CubicBez.MonotoneSplitParams.
func ToMonotone(p *path.Path) MonotonePath {
	var out MonotonePath
	for _, seg := range p.Segments() {
		var cubic vgfx.CubicBez
		switch seg.Verb {
		case path.Line:
			cubic = vgfx.CubicBez{P0: seg.Start, P1: seg.End, P2: seg.End, P3: seg.End}
		case path.Quadratic:
			cubic = vgfx.QuadBez{P0: seg.Start, P1: seg.Ctrl1, P2: seg.End}.Raise()
		case path.Cubic:
			cubic = vgfx.CubicBez{P0: seg.Start, P1: seg.Ctrl1, P2: seg.Ctrl2, P3: seg.End}
		default:
			continue
		}
		appendMonotone(&out, cubic)
	}
	return out
}

func appendMonotone(out *MonotonePath, c vgfx.CubicBez) {
	params := c.MonotoneSplitParams()
	if len(params) == 0 {
		out.Segs = append(out.Segs, CubicSeg{c.P0, c.P1, c.P2, c.P3})
		return
	}
	rest := c
	last := 0.0
	for _, t := range params {
		// Re-parameterize t, which is relative to the original curve,
		// onto the remaining [last,1] segment.
		local := (t - last) / (1 - last)
		head, tail := rest.SplitAt(local)
		out.Segs = append(out.Segs, CubicSeg{head.P0, head.P1, head.P2, head.P3})
		rest = tail
		last = t
	}
	out.Segs = append(out.Segs, CubicSeg{rest.P0, rest.P1, rest.P2, rest.P3})
}
