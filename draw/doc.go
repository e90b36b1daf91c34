// Package draw assembles a tiled path's classified geometry (vgfx/tile's
// Result) plus its paint into the packed vertex buffers a GPU fine stage
// consumes directly: TileVertex for boundary tiles, FillVertex for
// interior spans, and the curve texture records both reference.
//
// The packed-word layout follows gpucore/types.go's convention of
// explicit Padding fields for GPU struct alignment (that file's
// Segment/TileInfo match WGSL struct layouts bit for bit); here the
// words instead match the documented fixed 40-byte TileVertex / 28-byte
// FillVertex shapes. PaintBinding range bookkeeping is grounded on
// render/layers.go's z-order compositing discipline.
package draw
