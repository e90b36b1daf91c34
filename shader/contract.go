package shader

// TileFragmentInput is what a tile fragment shader reads per fragment:
// the fragment's local position within the tile's [0,1]² space (its
// CurveU/CurveV interpolant, per draw.TileVertex), the curve list range
// and encoding baked into the vertex's attribute words, and the
// left-edge winding those attributes carry.
//
// TileFragmentShader(in) walks in.CurvesOffset..+in.CurvesCount, for
// each curve in the vertically-relevant y-band computes the signed
// number of x-axis crossings with an epsilon-robust quadratic/cubic
// root solver, sums these into an integer winding number seeded with
// in.LeftWinding, and returns 1.0 if in.EvenOdd resolves that winding
// number to "inside" (nonzero or parity, matching vgfx.FillRule) else
// 0.0. The final color is that coverage times the paint sample at
// in.PaintCoord.
type TileFragmentInput struct {
	LocalX, LocalY float32
	CurvesOffset   uint32
	CurvesCount    uint16
	CurveEncoding  uint8 // draw.CurveEncoding: quadratic or cubic
	LeftWinding    int32
	EvenOdd        bool
	PaintCoord     uint32
}

// FillFragmentInput is what a fill fragment shader reads: nothing but
// the paint coord, since an interior span is fully covered by
// construction (vgfx/tile only emits a Span for a run of tiles on one
// row that lie entirely inside the path). FillFragmentShader(in) always returns coverage 1.0;
// the final color is the paint sample at in.PaintCoord, unmodulated.
type FillFragmentInput struct {
	PaintCoord uint32
}

// PrimitiveKind is the low byte of a Primitive's Attr3, selecting which
// UI overlay shape a primitive instance draws.
type PrimitiveKind uint8

const (
	PrimitiveLine PrimitiveKind = iota
	PrimitiveRect
	PrimitiveCircle
)

// Primitive is one instance of the debug/UI overlay's per-instance
// attribute stream: a line's two endpoints, a rect's origin and size, or
// a circle's center and radius, packed into attr1/attr2 depending on
// Attr3's PrimitiveKind, plus a solid color.
//
// PrimitiveShader(in) dispatches on in.Kind(): a line rasterizes the
// segment attr1..attr2 at the renderer's configured UI line width; a
// rect strokes or fills attr1 (origin) sized by attr2; a circle draws
// centered at attr1 with radius attr2.X, matching the renderer
// Settings' UIHandleSize/UILineWidth/UIPrimaryColor defaults when a
// caller doesn't override Color.
type Primitive struct {
	Attr1 [2]float32
	Attr2 [2]float32
	Attr3 uint32
	Color uint32
}

// Kind extracts the primitive kind from Attr3's low byte.
func (p Primitive) Kind() PrimitiveKind {
	return PrimitiveKind(p.Attr3 & 0xff)
}

// PackAttr3 builds a Primitive's Attr3 word from its kind; the upper 24
// bits are reserved and currently always zero.
func PackAttr3(kind PrimitiveKind) uint32 {
	return uint32(kind)
}
