package batch

import "github.com/inkwell/vgfx/draw"

// quadIndices is the static index pattern every quad (four vertices, two
// triangles) replicates, offset by the quad's base vertex index.
var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// TileBatch is one fixed-capacity buffer of boundary-tile vertices, their
// triangle indices, and the curve control points they reference.
type TileBatch struct {
	Vertices []draw.TileVertex
	Indices  []uint32
	Curves   []draw.CurveRecord

	MaxVertices int
	MaxCurves   int
}

func newTileBatch(maxVertices, maxCurves int) *TileBatch {
	return &TileBatch{MaxVertices: maxVertices, MaxCurves: maxCurves}
}

func (b *TileBatch) fits(vertexCount, curveCount int) bool {
	return len(b.Vertices)+vertexCount <= b.MaxVertices && len(b.Curves)+curveCount <= b.MaxCurves
}

func (b *TileBatch) appendQuad(v [4]draw.TileVertex) {
	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices, v[:]...)
	for _, idx := range quadIndices {
		b.Indices = append(b.Indices, base+idx)
	}
}

// FillBatch is one fixed-capacity buffer of interior-span fill vertices
// and their triangle indices.
type FillBatch struct {
	Vertices []draw.FillVertex
	Indices  []uint32

	MaxVertices int
}

func newFillBatch(maxVertices int) *FillBatch {
	return &FillBatch{MaxVertices: maxVertices}
}

func (b *FillBatch) fits(vertexCount int) bool {
	return len(b.Vertices)+vertexCount <= b.MaxVertices
}

func (b *FillBatch) appendQuad(v [4]draw.FillVertex) {
	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices, v[:]...)
	for _, idx := range quadIndices {
		b.Indices = append(b.Indices, base+idx)
	}
}

// Flushed is a completed pair of tile/fill batches and the paint ids
// bound to each texture unit at the time they were flushed.
type Flushed struct {
	Tile        *TileBatch
	Fill        *FillBatch
	PaintUnits  map[uint64]int
}

// Packer accumulates Drawables into TileBatch/FillBatch pairs, assigning
// each pushed drawable the next back-to-front z-index (later pushes cover
// earlier ones) and rewriting its vertices' baked-in z/paint-coord bits to
// match, per the packed-vertex "finalize after memcpy" approach. It
// flushes the current batch automatically when a drawable would overflow
// its remaining vertex, index, or curve capacity.
type Packer struct {
	maxTileVertices int
	maxCurves       int
	maxFillVertices int
	maxTextureUnits int

	curTile   *TileBatch
	curFill   *FillBatch
	curUnits  map[uint64]int
	nextUnit  int
	nextZ     uint32

	flushed []Flushed
}

// New creates a Packer with the given per-batch capacities.
func New(maxTileVertices, maxCurves, maxFillVertices, maxTextureUnits int) *Packer {
	p := &Packer{
		maxTileVertices: maxTileVertices,
		maxCurves:       maxCurves,
		maxFillVertices: maxFillVertices,
		maxTextureUnits: maxTextureUnits,
	}
	p.resetBatches()
	return p
}

func (p *Packer) resetBatches() {
	p.curTile = newTileBatch(p.maxTileVertices, p.maxCurves)
	p.curFill = newFillBatch(p.maxFillVertices)
	p.curUnits = make(map[uint64]int)
	p.nextUnit = 0
}

// PushDrawable appends d's tile and fill vertices to the current batch,
// flushing first if d would overflow either batch's remaining capacity.
// Every PaintBinding's paint id is bound to a texture unit, flushing to
// rebind from unit 0 if the unit table is full.
func (p *Packer) PushDrawable(d *draw.Drawable) {
	z := p.nextZ
	p.nextZ++

	if !p.curTile.fits(len(d.Tiles), len(d.Curves)) || !p.curFill.fits(len(d.Fills)) {
		p.Flush()
	}
	for _, binding := range d.Bindings {
		if _, ok := p.curUnits[binding.PaintID]; !ok && p.nextUnit >= p.maxTextureUnits {
			p.Flush()
			break
		}
	}

	curveBase := uint32(len(p.curTile.Curves))
	p.curTile.Curves = append(p.curTile.Curves, d.Curves...)

	for _, binding := range d.Bindings {
		unit := p.acquireUnit(binding.PaintID)

		for i := binding.TileRange[0]; i < binding.TileRange[1]; i += 4 {
			var quad [4]draw.TileVertex
			copy(quad[:], d.Tiles[i:i+4])
			for j := range quad {
				finalizeTileVertex(&quad[j], z, uint32(unit), curveBase)
			}
			p.curTile.appendQuad(quad)
		}

		for i := binding.FillRange[0]; i < binding.FillRange[1]; i += 4 {
			var quad [4]draw.FillVertex
			copy(quad[:], d.Fills[i:i+4])
			for j := range quad {
				finalizeFillVertex(&quad[j], z, uint32(unit))
			}
			p.curFill.appendQuad(quad)
		}
	}
}

// acquireUnit returns paintID's bound texture unit, assigning a fresh one
// on a miss. Callers must ensure the unit table has room (PushDrawable
// flushes ahead of time when it does not) since acquiring mid-drawable
// cannot safely discard vertices already appended for this drawable.
func (p *Packer) acquireUnit(paintID uint64) int {
	if unit, ok := p.curUnits[paintID]; ok {
		return unit
	}
	unit := p.nextUnit
	p.curUnits[paintID] = unit
	p.nextUnit++
	return unit
}

// finalizeTileVertex rewrites a copied TileVertex's z-index, paint-coord,
// and curves-offset attribute bits in place, leaving blend/paint-type/
// winding/count/encoding untouched.
func finalizeTileVertex(v *draw.TileVertex, z, paintCoord, curvesOffset uint32) {
	blend, paint, _, _, encoding, evenOdd, _, leftWinding, curvesCount := draw.UnpackTileAttrs(v.Attr0, v.Attr1, v.Attr2)
	v.Attr0, v.Attr1, v.Attr2 = draw.PackTileAttrs(blend, paint, curvesOffset, z, encoding, evenOdd, paintCoord, leftWinding, curvesCount)
	v.PaintCoord = paintCoord
}

// finalizeFillVertex rewrites a copied FillVertex's z-index and
// paint-coord bits in place.
func finalizeFillVertex(v *draw.FillVertex, z, paintCoord uint32) {
	blend, paint, _, _ := draw.UnpackFillWords(v.BlendPaint, v.ZPaint)
	v.BlendPaint, v.ZPaint = draw.PackFillWords(blend, paint, z, paintCoord)
	v.PaintCoord = paintCoord
}

// Flush completes the current batch pair, appending it to the flushed
// list, and starts a fresh empty batch pair.
func (p *Packer) Flush() {
	if len(p.curTile.Vertices) == 0 && len(p.curFill.Vertices) == 0 {
		return
	}
	p.flushed = append(p.flushed, Flushed{Tile: p.curTile, Fill: p.curFill, PaintUnits: p.curUnits})
	p.resetBatches()
}

// Drain flushes any pending batch and returns every completed batch pair
// accumulated since the last Drain, clearing the packer's internal list.
func (p *Packer) Drain() []Flushed {
	p.Flush()
	out := p.flushed
	p.flushed = nil
	return out
}
