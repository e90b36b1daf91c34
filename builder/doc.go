// Package builder turns an edited vgfx/path.Path plus its fill or stroke
// style into the flattened, monotone-cubic geometry the tiling engine
// consumes. It performs, in order: stroke-to-fill expansion, monotone
// decomposition, half-plane clipping against the viewport, and curve
// flattening to line segments.
//
// Builder is grounded on internal/stroke/expander.go for stroke-to-fill
// expansion and internal/path/flatten.go for curve flattening, both
// re-expressed over the vgfx/path.Path and root vgfx curve types instead
// of those files' own local element/point types.
package builder
