package renderer

import (
	"errors"

	"github.com/inkwell/vgfx"
)

// errResourceNotFound is returned by ResourceManager implementations
// (including NullResourceManager) for an id they can't resolve. DrawPath
// and DrawStroke treat it specially: they substitute the magenta
// fallback color and log once per id rather than propagating an error.
var errResourceNotFound = errors.New("renderer: resource not found")

// fallbackColor is the visible failure color substituted for a paint
// the resource manager could not resolve.
var fallbackColor = vgfx.RGBA{R: 1, G: 0, B: 1, A: 1}

// Counters tallies the recoverable-failure categories: invariant
// violations caught by a bounds check rather than a panic, batch-capacity
// flushes forced mid-frame, resource lookups that fell back to magenta,
// and device calls the GPU layer reported failing. Renderer increments
// only InvariantViolations and ResourceMisses; CapacityFlushes and
// DeviceErrors stay zero.
type Counters struct {
	InvariantViolations uint64
	CapacityFlushes     uint64
	ResourceMisses      uint64
	DeviceErrors        uint64
}

// Stats summarizes a Renderer's cumulative counters.
type Stats struct {
	Counters Counters
}
