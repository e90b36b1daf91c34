package gpucore

// GPUAdapter is the minimal capability query HybridPipeline needs from a
// GPU backend. It intentionally does not expose resource creation: that
// broader surface (buffers, textures, compute passes, bind groups)
// belongs to vgfx/gpu's Device/RenderState abstraction instead. This
// package only records the answer, which HybridPipeline.UseGPU reports.
type GPUAdapter interface {
	// SupportsCompute returns whether compute shaders are supported.
	// HybridPipeline runs its stages on the CPU whatever this returns.
	SupportsCompute() bool
}

// NullAdapter is a GPUAdapter with no compute support, forcing
// HybridPipeline onto its CPU scanline path. Callers that have no GPU
// backend wired up (the common case for this module, which never creates
// a device itself) pass this.
type NullAdapter struct{}

// SupportsCompute always returns false for NullAdapter.
func (NullAdapter) SupportsCompute() bool { return false }
