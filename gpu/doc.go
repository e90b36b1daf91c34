// Package gpu is the renderer's GPU device abstraction: it owns textures,
// buffers, programs, vertex arrays, and framebuffers, and diffs
// consecutive RenderState values so the renderer only issues the state
// changes a draw call actually needs.
//
// device.go is adapted from render/device.go, which this package
// supersedes: the DeviceHandle/TextureDescriptor/DeviceCapabilities shape
// and the "receive a device from the host, never create one" principle
// carry over unchanged, still wired to the real gpucontext/gputypes
// dependencies. resources.go and state.go are new, grounded on
// gpucore/types.go's opaque resource-id pattern (BufferID/TextureID/
// ShaderModuleID) and on the single-owner, diff-before-issue device
// model backend/gogpu/backend.go described (that file itself did not
// survive into this module; see DESIGN.md).
package gpu
