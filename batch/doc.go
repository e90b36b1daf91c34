// Package batch packs assembled Drawables into fixed-capacity GPU
// buffers: a tile batch (vertex + index + curve texture) and a fill
// batch (vertex + index only), both using a static six-index quad pattern
// that is appended, offset by the quad's base vertex, as each quad is
// pushed (index buffers are not pre-filled to capacity), flushing automatically when
// a drawable would overflow the current batch's remaining capacity.
//
// The capacity/overflow discipline is grounded on gpucore/types.go's
// MaxSegmentsPerCurve and the tile-count/segment-count bookkeeping that
// file documents for GPU transfer; the back-to-front z assignment and
// texture-unit acquire-or-rebind table generalize render/layers.go's
// ascending z-order compositing (there expressed over CPU *image.RGBA
// layers, here over paint ids bound to texture units) and
// render/device.go's Texture/TextureDescriptor resource shape.
package batch
