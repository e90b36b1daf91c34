package tile

import (
	"math"
	"sort"

	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/builder"
	"github.com/inkwell/vgfx/gpucore"
	"github.com/inkwell/vgfx/raster"
)

// Kind classifies a tile cell's relationship to the filled region.
type Kind int

const (
	Outside Kind = iota
	Filled
	Boundary
)

// Size is the device-pixel edge length of one tile, mirrored from
// gpucore.TileSize so the two packages can never disagree on it.
const Size = gpucore.TileSize

// SoftSegmentLimit and HardSegmentLimit bound how many boundary crossings a
// single tile may carry. Past the hard limit the tiler drops the remainder
// (counted in Tile.Dropped) rather than growing a tile's record without
// bound. Nothing in this module reads SoftSegmentLimit: crossings past it
// are kept in the tile's record like any other, with no overflow list.
const (
	SoftSegmentLimit = 32
	HardSegmentLimit = 256
)

// Tile is one Boundary cell: the crossings of flattened edges through it,
// packed as tile-local Fixed8_8Segment words, plus the accumulated winding
// number to its left edge (the "backdrop" fill/tile assembly uses to shade
// the cell's non-covered interior, if any).
type Tile struct {
	X, Y        int
	LeftWinding int32
	Segments    []vgfx.Fixed8_8Segment
	Dropped     int // segments beyond HardSegmentLimit that were discarded
}

// Span is a horizontal run of fully Filled tiles on one tile row.
type Span struct {
	X, Y, Width int
}

// Result is the classified tile grid produced by one Tile call. Tiles not
// present in Boundaries and not covered by a Span are Outside.
type Result struct {
	Columns, Rows int
	CellSize      float64
	Boundaries    map[[2]int]*Tile
	Spans         []Span
}

// CellSize returns the scene-space edge length of one tile at the given
// viewport zoom, so that each tile covers exactly Size device pixels.
func CellSize(zoom float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return float64(Size) / zoom
}

// Tiler classifies monotone paths into tile grids for a fixed fill rule.
type Tiler struct {
	fillRule  vgfx.FillRule
	tolerance float64
}

// New creates a Tiler. tolerance is the curve-flattening error tolerance
// in scene units; if zero, gpucore.DefaultTolerance is used.
func New(fillRule vgfx.FillRule, tolerance float64) *Tiler {
	if tolerance <= 0 {
		tolerance = float64(gpucore.DefaultTolerance)
	}
	return &Tiler{fillRule: fillRule, tolerance: tolerance}
}

// crossing is one flattened edge's intersection with a single tile row.
type crossing struct {
	xTop, xBot float32
	winding    int32
}

// Tile classifies mp against viewport at the given zoom, producing the
// Outside/Filled/Boundary grid the batch packer consumes.
//
// For each tile row it builds the set of edges overlapping that row
// (grounded on raster/edge.go's Edge.YMin/YMax half-open active range),
// marks every tile column an edge's x-span touches as Boundary, and sweeps
// the remaining columns left to right accumulating winding from edges
// entirely to their left to classify them Filled or Outside, coalescing
// adjacent Filled tiles into Spans.
func (t *Tiler) Tile(mp builder.MonotonePath, viewport vgfx.Rect, zoom float64) *Result {
	cellSize := CellSize(zoom)
	cols := int(math.Ceil(viewport.Width() / cellSize))
	rows := int(math.Ceil(viewport.Height() / cellSize))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	res := &Result{Columns: cols, Rows: rows, CellSize: cellSize, Boundaries: make(map[[2]int]*Tile)}
	if cols == 0 || rows == 0 {
		return res
	}

	lines := builder.Flatten(mp, t.tolerance)
	edgeList := raster.NewEdgeList()
	for _, l := range lines {
		edgeList.AddLine(
			float32(l.A.X-viewport.Min.X), float32(l.A.Y-viewport.Min.Y),
			float32(l.B.X-viewport.Min.X), float32(l.B.Y-viewport.Min.Y),
		)
	}
	edgeList.SortByYMin()
	edges := edgeList.Edges()

	for ty := 0; ty < rows; ty++ {
		t.tileRow(res, edges, ty, cols, cellSize)
	}
	return res
}

func (t *Tiler) tileRow(res *Result, edges []raster.Edge, ty, cols int, cellSize float64) {
	yTop := float32(float64(ty) * cellSize)
	yBot := float32(float64(ty+1) * cellSize)

	var crossings []crossing
	for i := range edges {
		e := &edges[i]
		if e.YMin >= yBot || e.YMax <= yTop {
			continue
		}
		top := maxf32(e.YMin, yTop)
		bot := minf32(e.YMax, yBot)
		crossings = append(crossings, crossing{xTop: e.XAtY(top), xBot: e.XAtY(bot), winding: int32(e.Winding)})
	}
	if len(crossings) == 0 {
		return // whole row Outside
	}

	boundaryCols := make(map[int]*Tile, len(crossings))
	for _, cr := range crossings {
		lo, hi := minf32(cr.xTop, cr.xBot), maxf32(cr.xTop, cr.xBot)
		txLo := clampCol(int(math.Floor(float64(lo)/cellSize)), cols)
		txHi := clampCol(int(math.Floor(float64(hi)/cellSize)), cols)
		for tx := txLo; tx <= txHi; tx++ {
			tl := boundaryCols[tx]
			if tl == nil {
				tl = &Tile{X: tx, Y: ty}
				boundaryCols[tx] = tl
				res.Boundaries[[2]int{tx, ty}] = tl
			}
			appendSegment(tl, cr, tx, cellSize)
		}
	}

	byRight := append([]crossing(nil), crossings...)
	sort.Slice(byRight, func(i, j int) bool {
		return maxf32(byRight[i].xTop, byRight[i].xBot) < maxf32(byRight[j].xTop, byRight[j].xBot)
	})

	var winding int32
	idx := 0
	spanStart := -1
	flushSpan := func(end int) {
		if spanStart >= 0 {
			res.Spans = append(res.Spans, Span{X: spanStart, Y: ty, Width: end - spanStart})
			spanStart = -1
		}
	}

	for tx := 0; tx < cols; tx++ {
		left := float32(float64(tx) * cellSize)
		for idx < len(byRight) && maxf32(byRight[idx].xTop, byRight[idx].xBot) <= left {
			winding += byRight[idx].winding
			idx++
		}

		if tl, isBoundary := boundaryCols[tx]; isBoundary {
			tl.LeftWinding = winding
			flushSpan(tx)
			continue
		}

		inside := winding != 0
		if t.fillRule == vgfx.FillRuleEvenOdd {
			inside = winding%2 != 0
		}
		if inside {
			if spanStart < 0 {
				spanStart = tx
			}
		} else {
			flushSpan(tx)
		}
	}
	flushSpan(cols)
}

// appendSegment packs a row crossing's portion within tile column tx into
// tile-local coordinates (the [0, Size) range Fixed8_8 is chosen for) and
// appends it, or counts it in Dropped once the tile already holds
// HardSegmentLimit segments.
func appendSegment(tl *Tile, cr crossing, tx int, cellSize float64) {
	if len(tl.Segments) >= HardSegmentLimit {
		tl.Dropped++
		return
	}
	originX := float64(tx) * cellSize
	scale := float64(Size) / cellSize

	x0 := vgfx.NewFixed8_8((float64(cr.xTop) - originX) * scale)
	x1 := vgfx.NewFixed8_8((float64(cr.xBot) - originX) * scale)
	y0 := vgfx.NewFixed8_8(0)
	y1 := vgfx.NewFixed8_8(float64(Size))

	tl.Segments = append(tl.Segments, vgfx.PackFixed8_8Segment(x0, y0, x1, y1))
}

func clampCol(tx, cols int) int {
	if tx < 0 {
		return 0
	}
	if tx >= cols {
		return cols - 1
	}
	return tx
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
