package builder

import "github.com/inkwell/vgfx"

// Line is a single straight edge produced by flattening.
type Line struct {
	A, B vgfx.Point
}

// maxFlattenDepth bounds recursive subdivision, grounded on
// internal/path/flatten.go's recursion guard against degenerate curves
// that never satisfy the flatness test.
const maxFlattenDepth = 16

// Flatten subdivides every segment of mp into line segments accurate to
// within tolerance (the maximum perpendicular deviation of a control point
// from its chord), using CubicBez.IsLine/.Subdivide the way
// internal/path/flatten.go uses de Casteljau subdivision plus a
// distance-to-chord flatness test, re-expressed over MonotonePath's cubic
// segments instead of that file's local Point/PathElement types.
func Flatten(mp MonotonePath, tolerance float64) []Line {
	var out []Line
	for _, seg := range mp.Segs {
		c := vgfx.CubicBez{P0: seg.P0, P1: seg.P1, P2: seg.P2, P3: seg.P3}
		flattenCubic(c, tolerance, 0, &out)
	}
	return out
}

func flattenCubic(c vgfx.CubicBez, tolerance float64, depth int, out *[]Line) {
	if depth >= maxFlattenDepth || c.IsLine(tolerance) {
		*out = append(*out, Line{A: c.P0, B: c.P3})
		return
	}
	left, right := c.Subdivide()
	flattenCubic(left, tolerance, depth+1, out)
	flattenCubic(right, tolerance, depth+1, out)
}
