// Package shader documents, without shipping a single line of WGSL, the
// three fragment contracts the tile batch, fill batch, and UI overlay
// vertex streams are defined against: how a fragment shader would
// consume draw.TileVertex/draw.FillVertex and the Primitive stream this
// package names.
//
// gpucore/types.go refers to flatten.wgsl/coarse.wgsl/fine.wgsl the same
// way: Go structs standing in for shader source that is not shipped,
// since this module's CPU tiling/assembly stages (vgfx/tile, vgfx/draw)
// already compute what those shaders would otherwise evaluate on the
// GPU. Shipping real WGSL is out of scope; the contract it would
// implement is not, so it lives here as documented Go types a future
// shader author (or a compute-shader port of vgfx/tile) would target.
package shader
