package builder

import "github.com/inkwell/vgfx"

// ClipLeft discards geometry to the left of x0, keeping points with x >= x0.
func ClipLeft(mp MonotonePath, x0 float64) MonotonePath {
	return clipMonotone(mp, x0, func(p vgfx.Point) float64 { return p.X }, true)
}

// ClipRight discards geometry to the right of x1, keeping points with x <= x1.
func ClipRight(mp MonotonePath, x1 float64) MonotonePath {
	return clipMonotone(mp, x1, func(p vgfx.Point) float64 { return p.X }, false)
}

// ClipTop discards geometry above y0, keeping points with y >= y0.
func ClipTop(mp MonotonePath, y0 float64) MonotonePath {
	return clipMonotone(mp, y0, func(p vgfx.Point) float64 { return p.Y }, true)
}

// ClipBottom discards geometry below y1, keeping points with y <= y1.
func ClipBottom(mp MonotonePath, y1 float64) MonotonePath {
	return clipMonotone(mp, y1, func(p vgfx.Point) float64 { return p.Y }, false)
}

// clipMonotone clips every segment against a single axis-aligned half-plane.
// Because each segment is already monotone along both axes (the MonotonePath
// invariant), a segment crosses the boundary at most once, so the crossing
// parameter can be found by bisection on the coordinate function rather than
// a general curve/line intersection.
func clipMonotone(mp MonotonePath, boundary float64, coord func(vgfx.Point) float64, keepAbove bool) MonotonePath {
	inside := func(v float64) bool {
		if keepAbove {
			return v >= boundary
		}
		return v <= boundary
	}

	var out MonotonePath
	for _, seg := range mp.Segs {
		c := vgfx.CubicBez{P0: seg.P0, P1: seg.P1, P2: seg.P2, P3: seg.P3}
		in0, in1 := inside(coord(seg.P0)), inside(coord(seg.P3))

		switch {
		case in0 && in1:
			out.Segs = append(out.Segs, seg)
		case !in0 && !in1:
			// entirely outside the half-plane, drop
		default:
			t := bisectCoord(c, coord, boundary)
			head, tail := c.SplitAt(t)
			keep := tail
			if in0 {
				keep = head
			}
			out.Segs = append(out.Segs, CubicSeg{keep.P0, keep.P1, keep.P2, keep.P3})
		}
	}
	return out
}

// bisectCoord finds the parameter t in [0,1] where coord(c.Eval(t)) crosses
// boundary, assuming coord is monotone along the curve.
func bisectCoord(c vgfx.CubicBez, coord func(vgfx.Point) float64, boundary float64) float64 {
	lo, hi := 0.0, 1.0
	increasing := coord(c.Eval(1)) >= coord(c.Eval(0))

	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		v := coord(c.Eval(mid))
		before := v < boundary
		if before == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
