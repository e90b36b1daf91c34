package draw

import (
	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/builder"
	"github.com/inkwell/vgfx/tile"
)

// LOD is a level-of-detail tag a Drawable is built for; a coarser LOD
// accepts a larger flattening tolerance, trading curve-record fidelity
// for a smaller Drawable at low zoom.
type LOD int

const (
	LODFull LOD = iota
	LODCoarse
)

// PaintBinding delimits a contiguous run of TileVertex/FillVertex indices
// that reference a single paint, so the batch packer can rewrite their
// paint-coord bytes once per texture bind rather than per vertex.
type PaintBinding struct {
	PaintID   uint64
	TileRange [2]int // half-open index range into Drawable.Tiles
	FillRange [2]int // half-open index range into Drawable.Fills
}

// Drawable is one path's assembled GPU-ready geometry: its curve control
// points, its boundary-tile and interior-span vertex quads, and the paint
// bindings delimiting which vertex ranges belong to which paint.
type Drawable struct {
	LOD        LOD
	Bounds     vgfx.Rect
	ValidRect  vgfx.Rect
	Curves     []CurveRecord
	Tiles      []TileVertex
	Fills      []FillVertex
	Bindings   []PaintBinding
}

// Style bundles the paint/blend parameters a draw call fixes for one
// path, independent of its geometry.
type Style struct {
	PaintID     uint64
	PaintType   PaintType
	PaintCoord  uint32
	Blend       BlendMode
	Color       uint32
	ZIndex      uint32
	EvenOdd     bool
}

// Assemble packs a tiled path's classification (tile.Result) into a
// Drawable under the given style. Boundary tiles become four-vertex
// TileVertex quads carrying their packed curve range and left-edge
// winding; Filled spans become four-vertex FillVertex quads; both share
// one Curves array built from the boundary tiles' packed segments,
// unpacked back to scene-space control points via mp's flattened lines so
// the fine stage can evaluate them without refetching the source path.
func Assemble(result *tile.Result, mp builder.MonotonePath, bounds vgfx.Rect, style Style) *Drawable {
	d := &Drawable{Bounds: bounds, ValidRect: bounds}

	for _, seg := range mp.Segs {
		d.Curves = append(d.Curves, CurveRecord{
			P0: [2]float32{float32(seg.P0.X), float32(seg.P0.Y)},
			P1: [2]float32{float32(seg.P1.X), float32(seg.P1.Y)},
			P2: [2]float32{float32(seg.P2.X), float32(seg.P2.Y)},
			P3: [2]float32{float32(seg.P3.X), float32(seg.P3.Y)},
		})
	}

	for _, t := range result.Boundaries {
		appendTileQuad(d, t, result.CellSize, style)
	}
	for _, s := range result.Spans {
		appendFillQuad(d, s, result.CellSize, style)
	}

	if len(d.Tiles) > 0 || len(d.Fills) > 0 {
		d.Bindings = append(d.Bindings, PaintBinding{
			PaintID:   style.PaintID,
			TileRange: [2]int{0, len(d.Tiles)},
			FillRange: [2]int{0, len(d.Fills)},
		})
	}
	return d
}

func appendTileQuad(d *Drawable, t *tile.Tile, cellSize float64, style Style) {
	offset := uint32(len(d.Curves))
	count := uint16(len(t.Segments))
	attr0, attr1, attr2 := PackTileAttrs(style.Blend, style.PaintType, offset, style.ZIndex, CurveCubic, style.EvenOdd, style.PaintCoord, t.LeftWinding, count)

	x0 := float32(float64(t.X) * cellSize)
	y0 := float32(float64(t.Y) * cellSize)
	x1 := float32(float64(t.X+1) * cellSize)
	y1 := float32(float64(t.Y+1) * cellSize)

	corners := [4][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range corners {
		d.Tiles = append(d.Tiles, TileVertex{
			X: c[0], Y: c[1],
			Color:      style.Color,
			PaintCoord: style.PaintCoord,
			CurveU:     uvs[i][0], CurveV: uvs[i][1],
			Attr0: attr0, Attr1: attr1, Attr2: attr2,
		})
	}
}

func appendFillQuad(d *Drawable, s tile.Span, cellSize float64, style Style) {
	blendPaint, zPaint := PackFillWords(style.Blend, style.PaintType, style.ZIndex, style.PaintCoord)

	x0 := float32(float64(s.X) * cellSize)
	y0 := float32(float64(s.Y) * cellSize)
	x1 := float32(float64(s.X+s.Width) * cellSize)
	y1 := float32(float64(s.Y+1) * cellSize)

	corners := [4][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	for _, c := range corners {
		d.Fills = append(d.Fills, FillVertex{
			X: c[0], Y: c[1],
			Color:      style.Color,
			PaintCoord: style.PaintCoord,
			BlendPaint: blendPaint,
			ZPaint:     zPaint,
		})
	}
}
