package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/inkwell/vgfx/gpucore"
)

// BufferKind is what a Buffer holds.
type BufferKind int

const (
	BufferVertex BufferKind = iota
	BufferIndex
)

// BufferUsageHint describes how often a Buffer's contents change, letting
// the device pick an appropriate GPU memory/update strategy.
type BufferUsageHint int

const (
	BufferStatic BufferUsageHint = iota
	BufferDynamic
	BufferStream
)

// Buffer is a GPU vertex or index buffer, identified by the same opaque
// id type gpucore.HybridPipeline's GPU transfer structures use.
type Buffer struct {
	ID    gpucore.BufferID
	Kind  BufferKind
	Usage BufferUsageHint
	Size  int
}

// UniformLocation is a cached handle to a named uniform within a Program,
// resolved once at link time rather than looked up by name per draw.
type UniformLocation int32

// InvalidUniformLocation marks a name with no matching uniform.
const InvalidUniformLocation UniformLocation = -1

// Program is a linked vertex+fragment shader pair with its uniform
// locations cached by name.
type Program struct {
	ID         gpucore.ShaderModuleID
	uniforms   map[string]UniformLocation
}

// NewProgram creates a Program, pre-resolving its uniform name table.
func NewProgram(id gpucore.ShaderModuleID, uniformNames []string) *Program {
	p := &Program{ID: id, uniforms: make(map[string]UniformLocation, len(uniformNames))}
	for i, name := range uniformNames {
		p.uniforms[name] = UniformLocation(i)
	}
	return p
}

// Uniform returns name's cached location, or InvalidUniformLocation if
// the program has no such uniform.
func (p *Program) Uniform(name string) UniformLocation {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return InvalidUniformLocation
}

// VertexFormat is a vertex attribute's component type and width, enough
// to describe every field TileVertex/FillVertex pack.
type VertexFormat int

const (
	VertexFloat32x2 VertexFormat = iota
	VertexFloat32x1
	VertexUint32x1
)

// VertexAttribute binds one shader input location to a byte offset
// within a vertex buffer's stride, with an optional instance divisor.
type VertexAttribute struct {
	Location uint32
	Offset   uint32
	Format   VertexFormat
	Divisor  uint32
}

// VertexArray is a named set of attribute bindings against a vertex
// buffer's stride, matching the draw package's TileVertex/FillVertex
// layouts.
type VertexArray struct {
	Stride     uint32
	Attributes []VertexAttribute
}

// TileVertexArray describes draw.TileVertex's 40-byte layout: position,
// color, paint coord, curve coord, three attribute words, padding.
func TileVertexArray() VertexArray {
	return VertexArray{
		Stride: 40,
		Attributes: []VertexAttribute{
			{Location: 0, Offset: 0, Format: VertexFloat32x2},
			{Location: 1, Offset: 8, Format: VertexUint32x1},
			{Location: 2, Offset: 12, Format: VertexUint32x1},
			{Location: 3, Offset: 16, Format: VertexFloat32x2},
			{Location: 4, Offset: 24, Format: VertexUint32x1},
			{Location: 5, Offset: 28, Format: VertexUint32x1},
			{Location: 6, Offset: 32, Format: VertexUint32x1},
		},
	}
}

// FillVertexArray describes draw.FillVertex's 28-byte layout: position,
// color, paint coord, two packed words, padding.
func FillVertexArray() VertexArray {
	return VertexArray{
		Stride: 28,
		Attributes: []VertexAttribute{
			{Location: 0, Offset: 0, Format: VertexFloat32x2},
			{Location: 1, Offset: 8, Format: VertexUint32x1},
			{Location: 2, Offset: 12, Format: VertexUint32x1},
			{Location: 3, Offset: 16, Format: VertexUint32x1},
			{Location: 4, Offset: 20, Format: VertexUint32x1},
		},
	}
}

// Renderbuffer is an attachment-only image (no sampling), used for a
// Framebuffer's depth/stencil attachment.
type Renderbuffer struct {
	Width, Height uint32
	Format        gputypes.TextureFormat
}

// Framebuffer is a color attachment plus optional depth and stencil
// attachments, the render target a RenderState binds.
type Framebuffer struct {
	Color   Texture
	Depth   *Renderbuffer
	Stencil *Renderbuffer
}
