package gpucore

import "math"

// Point2 is a flat 2D point used for CPU-side path flattening, kept
// independent of the root vgfx package so gpucore has no dependency back
// on its own callers.
type Point2 struct {
	X, Y float32
}

// flattenMaxDepth caps the recursive subdivision of one curve, so a curve
// yields at most 2^10 line segments. Below that depth a piece is accepted
// once its control points lie within the tolerance of its chord. Grounded
// on internal/path/flatten.go's distanceToLine test.
const flattenMaxDepth = 10

// TransformPoint applies an AffineTransform to a point. Matrix layout is
// column-major per AffineTransform's doc comment.
func TransformPoint(t AffineTransform, x, y float32) (float32, float32) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// flattenElements walks a path element stream and produces monotonic line
// segments in transformed (viewport) space, subdividing each curve element
// at most flattenMaxDepth levels deep. It mirrors the cursor/subpath bookkeeping of
// internal/path/flatten.go's Flatten function, generalized to PathElement's
// GPU-facing encoding (verb + point range into a shared points array)
// instead of that file's element-interface model.
func flattenElements(elements []PathElement, points []Point2, transform AffineTransform, tolerance float32) []Segment {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var segs []Segment
	var cursor, subStart Point2
	haveCursor := false

	addLine := func(a, b Point2) {
		if a == b {
			return
		}
		winding := int32(1)
		if b.Y < a.Y {
			winding = -1
		}
		segs = append(segs, Segment{
			X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y,
			Winding: winding,
			TileY0:  int32(math.Floor(float64(min32(a.Y, b.Y)) / TileSize)),
			TileY1:  int32(math.Floor(float64(max32(a.Y, b.Y)) / TileSize)),
		})
	}

	readPoints := func(el PathElement) []Point2 {
		start, count := int(el.PointStart), int(el.PointCount)
		if start < 0 || start+count > len(points) {
			return nil
		}
		out := make([]Point2, count)
		for i := 0; i < count; i++ {
			x, y := TransformPoint(transform, points[start+i].X, points[start+i].Y)
			out[i] = Point2{X: x, Y: y}
		}
		return out
	}

	for _, el := range elements {
		pts := readPoints(el)
		switch el.Verb {
		case 0: // MoveTo
			if len(pts) < 1 {
				continue
			}
			cursor = pts[0]
			subStart = pts[0]
			haveCursor = true
		case 1: // LineTo
			if !haveCursor || len(pts) < 1 {
				continue
			}
			addLine(cursor, pts[0])
			cursor = pts[0]
		case 2: // QuadTo
			if !haveCursor || len(pts) < 2 {
				continue
			}
			flattenQuad(cursor, pts[0], pts[1], tolerance, 0, addLine)
			cursor = pts[1]
		case 3: // CubicTo
			if !haveCursor || len(pts) < 3 {
				continue
			}
			flattenCubic(cursor, pts[0], pts[1], pts[2], tolerance, 0, addLine)
			cursor = pts[2]
		case 4: // Close
			if haveCursor {
				addLine(cursor, subStart)
				cursor = subStart
			}
		}
	}
	return segs
}

func flattenQuad(p0, p1, p2 Point2, tolerance float32, depth int, emit func(a, b Point2)) {
	if depth >= flattenMaxDepth || quadFlatEnough(p0, p1, p2, tolerance) {
		emit(p0, p2)
		return
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p012 := mid(p01, p12)
	flattenQuad(p0, p01, p012, tolerance, depth+1, emit)
	flattenQuad(p012, p12, p2, tolerance, depth+1, emit)
}

func flattenCubic(p0, p1, p2, p3 Point2, tolerance float32, depth int, emit func(a, b Point2)) {
	if depth >= flattenMaxDepth || cubicFlatEnough(p0, p1, p2, p3, tolerance) {
		emit(p0, p3)
		return
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)
	flattenCubic(p0, p01, p012, p0123, tolerance, depth+1, emit)
	flattenCubic(p0123, p123, p23, p3, tolerance, depth+1, emit)
}

func mid(a, b Point2) Point2 {
	return Point2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func quadFlatEnough(p0, p1, p2 Point2, tolerance float32) bool {
	return distanceToLine(p1, p0, p2) <= tolerance
}

func cubicFlatEnough(p0, p1, p2, p3 Point2, tolerance float32) bool {
	return distanceToLine(p1, p0, p3) <= tolerance && distanceToLine(p2, p0, p3) <= tolerance
}

// distanceToLine returns the perpendicular distance from p to the line a-b.
func distanceToLine(p, a, b Point2) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 1e-9 {
		ddx := p.X - a.X
		ddy := p.Y - a.Y
		return float32(math.Sqrt(float64(ddx*ddx + ddy*ddy)))
	}
	cross := (p.X-a.X)*dy - (p.Y-a.Y)*dx
	return float32(math.Abs(float64(cross))) / length
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
