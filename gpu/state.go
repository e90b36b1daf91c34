package gpu

import "github.com/inkwell/vgfx"

// PrimitiveKind is the topology a draw call assembles vertices into.
type PrimitiveKind int

const (
	PrimitiveTriangles PrimitiveKind = iota
	PrimitiveLines
	PrimitivePoints
)

// Viewport is the device-pixel rect a RenderState draws into.
type Viewport struct {
	X, Y, Width, Height int
}

// BlendState is a single-pass source/destination blend configuration.
type BlendState struct {
	Enabled bool
	SrcRGB  uint32
	DstRGB  uint32
	SrcA    uint32
	DstA    uint32
}

// DepthState configures depth testing.
type DepthState struct {
	TestEnabled  bool
	WriteEnabled bool
}

// StencilState configures stencil testing.
type StencilState struct {
	Enabled   bool
	Reference uint32
	ReadMask  uint32
	WriteMask uint32
}

// ClearOp describes what a RenderState clears before drawing; a nil field
// means that attachment is not cleared.
type ClearOp struct {
	Color   *vgfx.RGBA
	Depth   *float32
	Stencil *uint32
}

// RenderState is everything a draw call depends on: target framebuffer,
// program, vertex array, primitive kind, viewport, uniform values,
// texture bindings, clear ops, and blend/depth/stencil configuration.
type RenderState struct {
	Framebuffer *Framebuffer
	Program     *Program
	VertexArray VertexArray
	Primitive   PrimitiveKind
	Viewport    Viewport
	Uniforms    map[string]any
	Textures    map[uint32]TextureView
	Clear       ClearOp
	Blend       BlendState
	Depth       DepthState
	Stencil     StencilState
}

// StateChange flags which parts of a RenderState differ from the one
// before it, so the device only reissues the GPU calls that changed.
type StateChange uint32

const (
	ChangedFramebuffer StateChange = 1 << iota
	ChangedProgram
	ChangedVertexArray
	ChangedViewport
	ChangedUniforms
	ChangedTextures
	ChangedClear
	ChangedBlend
	ChangedDepth
	ChangedStencil
)

// Device owns a host-supplied GPU handle and the RenderState diffing
// that minimizes redundant state changes between draws, per the
// single-owner device model.
type Device struct {
	Handle DeviceHandle

	current    RenderState
	hasCurrent bool
}

// NewDevice wraps handle, which the renderer never creates itself.
func NewDevice(handle DeviceHandle) *Device {
	if handle == nil {
		handle = NullDeviceHandle{}
	}
	return &Device{Handle: handle}
}

// Apply diffs next against the previously applied state, returns which
// parts changed, and adopts next as current. The first call against a
// fresh Device reports every field changed.
func (d *Device) Apply(next RenderState) StateChange {
	if !d.hasCurrent {
		d.current = next
		d.hasCurrent = true
		return ChangedFramebuffer | ChangedProgram | ChangedVertexArray | ChangedViewport |
			ChangedUniforms | ChangedTextures | ChangedClear | ChangedBlend | ChangedDepth | ChangedStencil
	}

	var changed StateChange
	prev := d.current

	if prev.Framebuffer != next.Framebuffer {
		changed |= ChangedFramebuffer
	}
	if prev.Program != next.Program {
		changed |= ChangedProgram
	}
	if !vertexArrayEqual(prev.VertexArray, next.VertexArray) {
		changed |= ChangedVertexArray
	}
	if prev.Viewport != next.Viewport {
		changed |= ChangedViewport
	}
	if !uniformsEqual(prev.Uniforms, next.Uniforms) {
		changed |= ChangedUniforms
	}
	if !texturesEqual(prev.Textures, next.Textures) {
		changed |= ChangedTextures
	}
	if prev.Clear != next.Clear {
		changed |= ChangedClear
	}
	if prev.Blend != next.Blend {
		changed |= ChangedBlend
	}
	if prev.Depth != next.Depth {
		changed |= ChangedDepth
	}
	if prev.Stencil != next.Stencil {
		changed |= ChangedStencil
	}

	d.current = next
	return changed
}

// Current returns the most recently applied RenderState.
func (d *Device) Current() RenderState {
	return d.current
}

func vertexArrayEqual(a, b VertexArray) bool {
	if a.Stride != b.Stride || len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if a.Attributes[i] != b.Attributes[i] {
			return false
		}
	}
	return true
}

func uniformsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func texturesEqual(a, b map[uint32]TextureView) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
