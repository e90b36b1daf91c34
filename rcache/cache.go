package rcache

import (
	"sync"
	"sync/atomic"

	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/draw"
	"github.com/inkwell/vgfx/internal/cache"
)

// Entry is one id's cached drawable together with the valid_rect within
// which it remains correct.
type Entry struct {
	Drawable  *draw.Drawable
	ValidRect vgfx.Rect
}

// Cache is the renderer's screen-space viewport cache: a coarse grid of
// validity flags over the last-known visible rect, the set of rects
// invalidated since that grid was last reset, and the id-keyed bounding
// rect / drawable memoization tables.
//
// Cache must not be copied after creation (it holds a sync.RWMutex and
// atomic counters).
type Cache struct {
	mu sync.RWMutex

	visible      vgfx.Rect
	cellSize     float64
	cols, rows   int
	valid        []bool
	invalidRects []vgfx.Rect

	bounds    *cache.Cache[uint64, vgfx.Rect]
	drawables *cache.Cache[uint64, Entry]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a Cache whose id-keyed memoization tables evict down to
// softLimit entries (0 means unlimited, matching internal/cache.Cache).
func New(softLimit int) *Cache {
	return &Cache{
		bounds:    cache.New[uint64, vgfx.Rect](softLimit),
		drawables: cache.New[uint64, Entry](softLimit),
	}
}

// SetGridRect resets the grid to cover rect with the given number of
// subdivisions per axis, marking every cell invalid. Called once per
// frame when the viewport changes.
func (c *Cache) SetGridRect(rect vgfx.Rect, subdivisions int) {
	if subdivisions < 1 {
		subdivisions = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = rect
	c.cols = subdivisions
	c.rows = subdivisions
	c.cellSize = rect.Width() / float64(subdivisions)
	c.valid = make([]bool, c.cols*c.rows)
	c.invalidRects = []vgfx.Rect{rect}
}

// InvalidateRect marks every grid cell rect touches as invalid and
// merges rect into the invalidated-rect list. Called by the document on
// any mutation whose screen-space effect intersects the cache.
func (c *Cache) InvalidateRect(rect vgfx.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidRects = append(c.invalidRects, rect)
	if c.cellSize <= 0 {
		return
	}
	colLo, colHi := c.colRange(rect)
	rowLo, rowHi := c.rowRange(rect)
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			c.valid[row*c.cols+col] = false
		}
	}
}

func (c *Cache) colRange(rect vgfx.Rect) (lo, hi int) {
	lo = clamp(int((rect.Min.X-c.visible.Min.X)/c.cellSize), 0, c.cols-1)
	hi = clamp(int((rect.Max.X-c.visible.Min.X)/c.cellSize), 0, c.cols-1)
	return
}

func (c *Cache) rowRange(rect vgfx.Rect) (lo, hi int) {
	lo = clamp(int((rect.Min.Y-c.visible.Min.Y)/c.cellSize), 0, c.rows-1)
	hi = clamp(int((rect.Max.Y-c.visible.Min.Y)/c.cellSize), 0, c.rows-1)
	return
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetBoundingRect memoizes the given id's bounding rect across frames,
// computing it with compute on a miss.
func (c *Cache) GetBoundingRect(id uint64, compute func() vgfx.Rect) vgfx.Rect {
	return c.bounds.GetOrCreate(id, compute)
}

// SetBoundingRect overwrites id's memoized bounding rect.
func (c *Cache) SetBoundingRect(id uint64, rect vgfx.Rect) {
	c.bounds.Set(id, rect)
}

// Lookup returns id's cached entry if it is usable for the current
// visible rect: its valid_rect must cover the visible rect, and no
// invalidated rect may intersect its bounding rect.
func (c *Cache) Lookup(id uint64, boundingRect vgfx.Rect) (Entry, bool) {
	entry, ok := c.drawables.Get(id)
	if !ok {
		c.misses.Add(1)
		return Entry{}, false
	}

	c.mu.RLock()
	visible := c.visible
	invalid := c.invalidRects
	c.mu.RUnlock()

	if !rectCovers(entry.ValidRect, visible) {
		c.misses.Add(1)
		return Entry{}, false
	}
	for _, r := range invalid {
		if rectsIntersect(r, boundingRect) {
			c.misses.Add(1)
			return Entry{}, false
		}
	}

	c.hits.Add(1)
	return entry, true
}

// Store memoizes id's assembled drawable and the valid_rect it was
// computed for.
func (c *Cache) Store(id uint64, entry Entry) {
	c.drawables.Set(id, entry)
}

// Clear releases id's cached bounding rect and drawable, per the
// document's cache.clear(id) callback contract when an entity is removed.
func (c *Cache) Clear(id uint64) {
	c.bounds.Delete(id)
	c.drawables.Delete(id)
}

// Stats reports hit/miss counts alongside the underlying memoization
// tables' occupancy.
type Stats struct {
	Hits, Misses   uint64
	BoundsEntries  int
	DrawableEntries int
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:            c.hits.Load(),
		Misses:          c.misses.Load(),
		BoundsEntries:   c.bounds.Len(),
		DrawableEntries: c.drawables.Len(),
	}
}

func rectCovers(outer, inner vgfx.Rect) bool {
	return outer.Min.X <= inner.Min.X && outer.Min.Y <= inner.Min.Y &&
		outer.Max.X >= inner.Max.X && outer.Max.Y >= inner.Max.Y
}

func rectsIntersect(a, b vgfx.Rect) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X && a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}
