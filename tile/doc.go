// Package tile implements the CPU tiling engine: it walks a builder
// monotone path across a grid of fixed-size cells and classifies each
// cell as Outside, Filled, or Boundary, the input the batch packer needs
// to assemble tile/fill vertex buffers.
//
// The per-row active-edge sweep is grounded on raster/edge.go's
// Edge/EdgeList/SimpleAET active-edge-table primitives, generalized from
// per-pixel scanline conversion to per-tile-row classification. Tile-local
// boundary geometry is packed with the root package's Fixed8_8Segment,
// matching the tile-local coordinate convention that type's doc comment
// describes. From gpucore this package uses only TileSize (as Size) and
// DefaultTolerance; it does not call gpucore.HybridPipeline's per-pixel
// coverage path.
package tile
