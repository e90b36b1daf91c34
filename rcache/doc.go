// Package rcache implements the renderer's screen-space viewport cache: a
// coarse grid over the last-known visible rect, a flat slice of validity flags,
// a set of invalidated screen-space rects, and two id-keyed maps —
// bounding rects and assembled drawables.
//
// The id-keyed memoization is wired directly onto internal/cache.Cache,
// generalizing its tick-counter LRU eviction from a single generic cache
// into this package's two distinct caches (bounds, drawables); the
// validity-grid and invalidation-rect bookkeeping around it is new,
// grounded on the deleted scene/cache.go's sync.RWMutex-guarded
// id-keyed map plus atomic hit/miss counter pattern, re-expressed as a
// screen-aligned grid instead of that file's content-hash pixmap cache.
package rcache
