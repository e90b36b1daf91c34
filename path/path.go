// Package path implements the path command model: an ordered sequence
// of cursor/line/quadratic/cubic commands over a packed control-point
// array, plus the spatial queries (bounds, containment, intersection)
// used by hit-testing and the path builder.
package path

import (
	"math"

	"github.com/inkwell/vgfx"
)

// VerbTag identifies a path command. Each command is stored as one
// VerbTag byte; tags are not bit-packed. The point data lives in a separate array
// indexed by running point count, following the dual-stream encoding
// the tiling pipeline expects downstream.
type VerbTag uint8

const (
	Move VerbTag = iota
	Line
	Quadratic
	Cubic
)

// PointCount returns how many control points a command consumes from
// the point array (not counting the point it continues from).
func (v VerbTag) PointCount() int {
	switch v {
	case Move, Line:
		return 1
	case Quadratic:
		return 2
	case Cubic:
		return 3
	default:
		return 0
	}
}

// Sentinel handle indices for VertexNode, marking an open-path endpoint
// that has no incoming or outgoing tangent handle.
const (
	NoInHandle  = -1
	NoOutHandle = -1
)

// Path is an ordered sequence of commands over a compact control-point
// array. Each command continues from the last point of the previous
// command. verbs holds one VerbTag per command; points holds one
// vgfx.Point per control point consumed (the path's start/cursor point
// included, so points[0] is the first Move's point).
//
// Invariants: if non-empty, verbs[0] == Move. A path with fewer than
// two points is Empty; one with zero points is Vacant.
type Path struct {
	verbs     []VerbTag
	points    []vgfx.Point
	closed    bool
	inHandle  []int // per-point incoming tangent handle index, or NoInHandle
	outHandle []int // per-point outgoing tangent handle index, or NoOutHandle
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// Vacant reports whether the path has no points at all.
func (p *Path) Vacant() bool { return len(p.points) == 0 }

// Empty reports whether the path has fewer than two control points,
// i.e. it cannot yet describe a segment.
func (p *Path) Empty() bool { return len(p.points) < 2 }

// Closed reports whether the path's last point is semantically equal
// to its first.
func (p *Path) Closed() bool { return p.closed }

// Verbs returns the command stream.
func (p *Path) Verbs() []VerbTag { return p.verbs }

// Points returns the control-point array.
func (p *Path) Points() []vgfx.Point { return p.points }

func (p *Path) grow() {
	for len(p.inHandle) < len(p.points) {
		p.inHandle = append(p.inHandle, NoInHandle)
		p.outHandle = append(p.outHandle, NoOutHandle)
	}
}

// MoveTo starts a new path at p. Legal only on an empty or vacant path;
// it replaces the sole point if the path currently holds just one
// (the "empty-after-move" state).
func (p *Path) MoveTo(pt vgfx.Point) {
	switch {
	case p.Vacant():
		p.verbs = append(p.verbs, Move)
		p.points = append(p.points, pt)
		p.grow()
	case p.Empty():
		p.points[0] = pt
	default:
		panic("path: MoveTo called on a non-empty path")
	}
}

// prependPoints inserts new points (with sentinel handles) before the
// path's first point and the command v right after the leading Move.
// pts run from the current first point outward, so they are stored in
// reverse and the last of them becomes the new start point.
func (p *Path) prependPoints(v VerbTag, pts ...vgfx.Point) {
	rev := make([]vgfx.Point, len(pts))
	for i, pt := range pts {
		rev[len(pts)-1-i] = pt
	}
	if len(p.verbs) > 0 {
		p.verbs = append([]VerbTag{Move, v}, p.verbs[1:]...)
	} else {
		p.verbs = []VerbTag{v}
	}
	p.points = append(rev, p.points...)
	sentinelIn := make([]int, len(pts))
	sentinelOut := make([]int, len(pts))
	for i := range sentinelIn {
		sentinelIn[i] = NoInHandle
		sentinelOut[i] = NoOutHandle
	}
	p.inHandle = append(sentinelIn, p.inHandle...)
	p.outHandle = append(sentinelOut, p.outHandle...)
}

// LineTo appends a line command to pt, or prepends it before the first
// point when reverse is true. A no-op if pt equals the relevant
// endpoint.
func (p *Path) LineTo(pt vgfx.Point, reverse bool) {
	if reverse {
		if len(p.points) > 0 && p.points[0] == pt {
			return
		}
		p.prependPoints(Line, pt)
		return
	}
	if len(p.points) > 0 && p.points[len(p.points)-1] == pt {
		return
	}
	p.verbs = append(p.verbs, Line)
	p.points = append(p.points, pt)
	p.grow()
}

// QuadraticTo appends a quadratic Bezier command with control point c
// and endpoint pt.
func (p *Path) QuadraticTo(c, pt vgfx.Point, reverse bool) {
	if reverse {
		p.prependPoints(Quadratic, c, pt)
		return
	}
	p.verbs = append(p.verbs, Quadratic)
	p.points = append(p.points, c, pt)
	p.grow()
}

// CubicTo appends a cubic Bezier command. Folds to a LineTo when both
// control points coincide with the segment's endpoints.
func (p *Path) CubicTo(c1, c2, pt vgfx.Point, reverse bool) {
	var last vgfx.Point
	if reverse {
		last = p.points[0]
	} else if len(p.points) > 0 {
		last = p.points[len(p.points)-1]
	}
	if c1 == last && c2 == pt {
		p.LineTo(pt, reverse)
		return
	}
	if reverse {
		p.prependPoints(Cubic, c1, c2, pt)
		return
	}
	p.verbs = append(p.verbs, Cubic)
	p.points = append(p.points, c1, c2, pt)
	p.grow()
}

// Close forces the last point equal to the first. If tangent hints
// exist at the endpoints it emits a closing cubic using them;
// otherwise a closing line.
func (p *Path) Close() {
	if p.Empty() {
		p.closed = true
		return
	}
	first := p.points[0]
	last := p.points[len(p.points)-1]
	outIdx := p.outHandle[len(p.points)-1]
	inIdx := p.inHandle[0]
	if outIdx != NoOutHandle || inIdx != NoInHandle {
		c1, c2 := last, first
		if outIdx != NoOutHandle {
			c1 = p.points[outIdx]
		}
		if inIdx != NoInHandle {
			c2 = p.points[inIdx]
		}
		p.CubicTo(c1, c2, first, false)
	} else {
		p.LineTo(first, false)
	}
	p.closed = true
}

// SetHandles records the incoming/outgoing tangent handle point
// indices for the control point at pointIndex.
func (p *Path) SetHandles(pointIndex, in, out int) {
	p.grow()
	p.inHandle[pointIndex] = in
	p.outHandle[pointIndex] = out
}

// VertexNode describes a vertex together with its incoming and
// outgoing tangent handle point indices. Open-path endpoints report
// NoInHandle / NoOutHandle.
type VertexNode struct {
	Index     int
	Point     vgfx.Point
	InHandle  int
	OutHandle int
}

// Vertex returns the VertexNode for the control point at pointIndex.
func (p *Path) Vertex(pointIndex int) VertexNode {
	n := VertexNode{Index: pointIndex, Point: p.points[pointIndex], InHandle: NoInHandle, OutHandle: NoOutHandle}
	if pointIndex < len(p.inHandle) {
		n.InHandle = p.inHandle[pointIndex]
		n.OutHandle = p.outHandle[pointIndex]
	}
	return n
}

// Segment is one command dereferenced to its actual point values,
// continuing from Start.
type Segment struct {
	Verb       VerbTag
	Start      vgfx.Point
	Ctrl1      vgfx.Point // valid for Quadratic (as the only control) and Cubic
	Ctrl2      vgfx.Point // valid for Cubic only
	End        vgfx.Point
	CmdIndex   int
	PointIndex int // index into Points() of the first point this command consumes (Start is the point before it)
}

// Segments returns the forward iteration of a path's segments,
// skipping the Move command after the first point (clients only see
// drawable segments, matching the iterator state machine: advancing
// through Move/Line increments the point cursor by 1, Quadratic by 2,
// Cubic by 3).
func (p *Path) Segments() []Segment {
	var out []Segment
	if len(p.verbs) == 0 {
		return out
	}
	cursor := p.points[0]
	j := 1
	for i, v := range p.verbs {
		switch v {
		case Move:
			if i == 0 {
				continue
			}
			cursor = p.points[j]
			j++
		case Line:
			seg := Segment{Verb: Line, Start: cursor, End: p.points[j], CmdIndex: i, PointIndex: j}
			out = append(out, seg)
			cursor = seg.End
			j++
		case Quadratic:
			seg := Segment{Verb: Quadratic, Start: cursor, Ctrl1: p.points[j], End: p.points[j+1], CmdIndex: i, PointIndex: j}
			out = append(out, seg)
			cursor = seg.End
			j += 2
		case Cubic:
			seg := Segment{Verb: Cubic, Start: cursor, Ctrl1: p.points[j], Ctrl2: p.points[j+1], End: p.points[j+2], CmdIndex: i, PointIndex: j}
			out = append(out, seg)
			cursor = seg.End
			j += 3
		}
	}
	return out
}

// ReverseSegments returns the same segments as Segments but walked
// from the path's end back to its start, with each segment's control
// points swapped so Start/End still read in traversal order.
func (p *Path) ReverseSegments() []Segment {
	fwd := p.Segments()
	out := make([]Segment, len(fwd))
	for i := range fwd {
		r := fwd[len(fwd)-1-i]
		r.Start, r.End = r.End, r.Start
		if r.Verb == Cubic {
			r.Ctrl1, r.Ctrl2 = r.Ctrl2, r.Ctrl1
		}
		out[i] = r
	}
	return out
}

// BoundingRect returns the exact tight bounds of the path via curve
// extrema, optionally transformed first.
func (p *Path) BoundingRect(transform *vgfx.Matrix) vgfx.Rect {
	segs := p.Segments()
	if len(segs) == 0 {
		if len(p.points) == 0 {
			return vgfx.Rect{}
		}
		pt := p.points[0]
		if transform != nil {
			pt = transform.TransformPoint(pt)
		}
		return vgfx.NewRect(pt, pt)
	}
	tp := func(pt vgfx.Point) vgfx.Point {
		if transform != nil {
			return transform.TransformPoint(pt)
		}
		return pt
	}
	r := vgfx.NewRect(tp(segs[0].Start), tp(segs[0].Start))
	for _, s := range segs {
		switch s.Verb {
		case Line:
			r = r.Union(vgfx.NewRect(tp(s.Start), tp(s.End)))
		case Quadratic:
			q := vgfx.NewQuadBez(tp(s.Start), tp(s.Ctrl1), tp(s.End))
			r = r.Union(q.BoundingBox())
		case Cubic:
			c := vgfx.NewCubicBez(tp(s.Start), tp(s.Ctrl1), tp(s.Ctrl2), tp(s.End))
			r = r.Union(c.BoundingBox())
		}
	}
	return r
}

// ApproxBoundingRect returns the convex hull bounds of all control
// points (including off-curve controls), faster but looser than
// BoundingRect.
func (p *Path) ApproxBoundingRect() vgfx.Rect {
	if len(p.points) == 0 {
		return vgfx.Rect{}
	}
	r := vgfx.NewRect(p.points[0], p.points[0])
	for _, pt := range p.points[1:] {
		r = r.Union(vgfx.NewRect(pt, pt))
	}
	return r
}

// Area returns the signed area enclosed by the path (shoelace formula
// extended to curves via Green's theorem). Positive for clockwise
// paths. Subpaths are implicitly closed for this computation.
func (p *Path) Area() float64 {
	segs := p.Segments()
	if len(segs) == 0 {
		return 0
	}
	var area float64
	for _, s := range segs {
		switch s.Verb {
		case Line:
			area += lineArea(s.Start, s.End)
		case Quadratic:
			area += quadArea(s.Start, s.Ctrl1, s.End)
		case Cubic:
			area += cubicArea(s.Start, s.Ctrl1, s.Ctrl2, s.End)
		}
	}
	first, last := p.points[0], segs[len(segs)-1].End
	if first != last {
		area += lineArea(last, first)
	}
	return area
}

func lineArea(p0, p1 vgfx.Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

func quadArea(p0, p1, p2 vgfx.Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

func cubicArea(p0, p1, p2, p3 vgfx.Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Winding returns the winding number of pt relative to the path using
// ray casting with a horizontal ray to the right. Subpaths are
// implicitly closed.
func (p *Path) Winding(pt vgfx.Point) int {
	segs := p.Segments()
	var winding int
	for _, s := range segs {
		switch s.Verb {
		case Line:
			winding += lineWinding(s.Start, s.End, pt)
		case Quadratic:
			winding += curveWinding(flattenQuad(vgfx.NewQuadBez(s.Start, s.Ctrl1, s.End), 0.1), pt)
		case Cubic:
			winding += curveWinding(flattenCubic(vgfx.NewCubicBez(s.Start, s.Ctrl1, s.Ctrl2, s.End), 0.1), pt)
		}
	}
	if len(segs) > 0 {
		first, last := p.points[0], segs[len(segs)-1].End
		if first != last {
			winding += lineWinding(last, first, pt)
		}
	}
	return winding
}

// flattenQuad recursively subdivides q until each piece is within
// tolerance of a line, returning the resulting polyline including
// both endpoints.
func flattenQuad(q vgfx.QuadBez, tolerance float64) []vgfx.Point {
	if q.IsLine(tolerance) {
		return []vgfx.Point{q.Start(), q.End()}
	}
	q1, q2 := q.Subdivide()
	left := flattenQuad(q1, tolerance)
	right := flattenQuad(q2, tolerance)
	return append(left[:len(left)-1], right...)
}

// flattenCubic recursively subdivides c until each piece is within
// tolerance of a line, returning the resulting polyline including
// both endpoints.
func flattenCubic(c vgfx.CubicBez, tolerance float64) []vgfx.Point {
	if c.IsLine(tolerance) {
		return []vgfx.Point{c.Start(), c.End()}
	}
	c1, c2 := c.Subdivide()
	left := flattenCubic(c1, tolerance)
	right := flattenCubic(c2, tolerance)
	return append(left[:len(left)-1], right...)
}

func curveWinding(pts []vgfx.Point, pt vgfx.Point) int {
	var w int
	for i := 0; i+1 < len(pts); i++ {
		w += lineWinding(pts[i], pts[i+1], pt)
	}
	return w
}

func lineWinding(p0, p1, pt vgfx.Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

func isLeft(p0, p1, pt vgfx.Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// ContainsFill reports whether pt lies inside the path's filled
// interior under the given fill rule.
func (p *Path) ContainsFill(pt vgfx.Point, rule vgfx.FillRule) bool {
	w := p.Winding(pt)
	if rule == vgfx.FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Intersects reports whether the path intersects rect, short-circuiting
// on the approximate bounds before testing individual segments. When
// collectVertices is true it also returns the indices of control
// points that fall inside rect.
func (p *Path) Intersects(rect vgfx.Rect, transform *vgfx.Matrix, collectVertices bool) (bool, []int) {
	bounds := p.BoundingRect(transform)
	if !rectsOverlap(bounds, rect) {
		return false, nil
	}

	tp := func(pt vgfx.Point) vgfx.Point {
		if transform != nil {
			return transform.TransformPoint(pt)
		}
		return pt
	}

	var inside []int
	if collectVertices {
		for i, pt := range p.points {
			if rect.Contains(tp(pt)) {
				inside = append(inside, i)
			}
		}
	}

	for _, s := range p.Segments() {
		segBounds := vgfx.NewRect(tp(s.Start), tp(s.End))
		switch s.Verb {
		case Quadratic:
			segBounds = segBounds.Union(vgfx.NewQuadBez(tp(s.Start), tp(s.Ctrl1), tp(s.End)).BoundingBox())
		case Cubic:
			segBounds = segBounds.Union(vgfx.NewCubicBez(tp(s.Start), tp(s.Ctrl1), tp(s.Ctrl2), tp(s.End)).BoundingBox())
		}
		if rectsOverlap(segBounds, rect) {
			return true, inside
		}
	}
	return len(inside) > 0, inside
}

func rectsOverlap(a, b vgfx.Rect) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X && a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

// ToLine converts the command at cmdIndex to a Line, dropping any
// control points it held.
func (p *Path) ToLine(cmdIndex int) {
	p.convert(cmdIndex, Line, func(start, end vgfx.Point) []vgfx.Point {
		return []vgfx.Point{end}
	})
}

// ToCubic converts the command at cmdIndex to a Cubic, placing new
// control points at one and two thirds along the chord from the
// command's start to its end. The visible shape is unchanged for a
// line; a quadratic or cubic command loses its curvature. refPoint is
// a point the caller wants to keep tracking (e.g. a selected vertex);
// the updated index for that same point is returned.
func (p *Path) ToCubic(cmdIndex int, refPoint int) int {
	before := len(p.points)
	shiftFrom := -1 // index of the converted command's end point
	for _, s := range p.Segments() {
		if s.CmdIndex == cmdIndex {
			shiftFrom = s.PointIndex + p.verbs[cmdIndex].PointCount() - 1
			break
		}
	}
	p.convert(cmdIndex, Cubic, func(start, end vgfx.Point) []vgfx.Point {
		c1 := start.Lerp(end, 1.0/3)
		c2 := start.Lerp(end, 2.0/3)
		return []vgfx.Point{c1, c2, end}
	})
	if shiftFrom >= 0 && refPoint >= shiftFrom {
		return refPoint + len(p.points) - before
	}
	return refPoint
}

func (p *Path) convert(cmdIndex int, to VerbTag, newPoints func(start, end vgfx.Point) []vgfx.Point) {
	segs := p.Segments()
	var target *Segment
	for i := range segs {
		if segs[i].CmdIndex == cmdIndex {
			target = &segs[i]
			break
		}
	}
	if target == nil {
		return
	}
	oldCount := p.verbs[cmdIndex].PointCount()
	replacement := newPoints(target.Start, target.End)

	newVerbs := make([]VerbTag, 0, len(p.verbs))
	newVerbs = append(newVerbs, p.verbs[:cmdIndex]...)
	newVerbs = append(newVerbs, to)
	newVerbs = append(newVerbs, p.verbs[cmdIndex+1:]...)
	p.verbs = newVerbs

	start := target.PointIndex
	newPts := make([]vgfx.Point, 0, len(p.points))
	newPts = append(newPts, p.points[:start]...)
	newPts = append(newPts, replacement...)
	newPts = append(newPts, p.points[start+oldCount:]...)
	p.points = newPts
	p.grow()
}

// Split subdivides the segment at segmentIndex at parameter t and
// returns the point index of the inserted control point (the existing
// midpoint index when splitting a quadratic, the single inserted
// point index for a line, or the first of three inserted points for
// a cubic).
func (p *Path) Split(segmentIndex int, t float64) int {
	segs := p.Segments()
	if segmentIndex < 0 || segmentIndex >= len(segs) {
		return -1
	}
	s := segs[segmentIndex]
	start := s.PointIndex

	switch s.Verb {
	case Line:
		mid := s.Start.Lerp(s.End, t)
		p.replaceSegment(s, []VerbTag{Line, Line}, []vgfx.Point{mid, s.End})
		return start
	case Quadratic:
		q := vgfx.NewQuadBez(s.Start, s.Ctrl1, s.End)
		q1, q2 := q.SplitAt(t)
		pts := []vgfx.Point{q1.P1, q1.P2, q2.P1, q2.P2}
		p.replaceSegment(s, []VerbTag{Quadratic, Quadratic}, pts)
		return start + 1
	case Cubic:
		c := vgfx.NewCubicBez(s.Start, s.Ctrl1, s.Ctrl2, s.End)
		c1, c2 := c.SplitAt(t)
		pts := []vgfx.Point{c1.P1, c1.P2, c1.P3, c2.P1, c2.P2, c2.P3}
		p.replaceSegment(s, []VerbTag{Cubic, Cubic}, pts)
		return start + 2
	}
	return -1
}

func (p *Path) insertHandles(at, n int) {
	ins := make([]int, n)
	for i := range ins {
		ins[i] = NoInHandle
	}
	p.inHandle = append(p.inHandle[:at:at], append(ins, p.inHandle[at:]...)...)
	p.outHandle = append(p.outHandle[:at:at], append(ins, p.outHandle[at:]...)...)
}

func (p *Path) replaceSegment(s Segment, verbs []VerbTag, pts []vgfx.Point) {
	oldCount := p.verbs[s.CmdIndex].PointCount()
	newVerbs := make([]VerbTag, 0, len(p.verbs)+len(verbs)-1)
	newVerbs = append(newVerbs, p.verbs[:s.CmdIndex]...)
	newVerbs = append(newVerbs, verbs...)
	newVerbs = append(newVerbs, p.verbs[s.CmdIndex+1:]...)
	p.verbs = newVerbs

	newPts := make([]vgfx.Point, 0, len(p.points)+len(pts)-oldCount)
	newPts = append(newPts, p.points[:s.PointIndex]...)
	newPts = append(newPts, pts...)
	newPts = append(newPts, p.points[s.PointIndex+oldCount:]...)
	p.points = newPts
	p.insertHandles(s.PointIndex, len(pts)-oldCount)
}

// Remove erases the control point at pointIndex, joining its two
// neighboring segments into one line from the prior segment's start to
// the following segment's end. keep_shape-style cubic fitting is not
// performed; callers that need shape preservation should fit a
// replacement cubic themselves before calling Remove.
func (p *Path) Remove(pointIndex int) {
	if pointIndex < 0 || pointIndex >= len(p.points) {
		return
	}
	segs := p.Segments()
	var beforeIdx, afterIdx = -1, -1
	for i := range segs {
		if segs[i].End == p.points[pointIndex] {
			beforeIdx = i
		}
		if segs[i].PointIndex == pointIndex+1 {
			afterIdx = i
		}
	}
	if beforeIdx < 0 || afterIdx < 0 || afterIdx != beforeIdx+1 {
		return
	}
	before, after := segs[beforeIdx], segs[afterIdx]

	newVerbs := make([]VerbTag, 0, len(p.verbs)-1)
	newVerbs = append(newVerbs, p.verbs[:before.CmdIndex]...)
	newVerbs = append(newVerbs, Line)
	newVerbs = append(newVerbs, p.verbs[after.CmdIndex+1:]...)
	p.verbs = newVerbs

	newPts := make([]vgfx.Point, 0, len(p.points))
	newPts = append(newPts, p.points[:before.PointIndex]...)
	newPts = append(newPts, after.End)
	newPts = append(newPts, p.points[after.PointIndex+endOffset(after):]...)
	p.points = newPts
	p.grow()
}

func endOffset(s Segment) int {
	switch s.Verb {
	case Line:
		return 1
	case Quadratic:
		return 2
	case Cubic:
		return 3
	default:
		return 0
	}
}

// clampUnit clamps t to [0, 1].
func clampUnit(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
