package gpucore

import (
	"fmt"
	"sync"

	"github.com/inkwell/vgfx/raster"
)

// PipelineConfig configures a HybridPipeline.
type PipelineConfig struct {
	// Width is the viewport width in pixels.
	Width int

	// Height is the viewport height in pixels.
	Height int

	// MaxPaths is the maximum number of path elements to process.
	// If 0, defaults to 10000.
	MaxPaths int

	// MaxSegments is the maximum number of output segments.
	// If 0, defaults to MaxPaths * MaxSegmentsPerCurve.
	MaxSegments int

	// Tolerance is the flattening tolerance in pixels.
	// If 0, defaults to DefaultTolerance.
	Tolerance float32

	// UseCPUFallback forces CPU execution of all stages.
	// Useful for debugging or when GPU compute is unreliable.
	UseCPUFallback bool
}

// HybridPipeline orchestrates the GPU rendering pipeline.
//
// The pipeline consists of three stages:
//  1. Flatten: Convert Bezier curves to line segments
//  2. Coarse: Bin segments into tiles
//  3. Fine: Calculate per-pixel coverage
//
// All three stages run on the CPU (see Execute); hardware support and
// configuration only change what UseGPU reports.
type HybridPipeline struct {
	mu sync.Mutex

	adapter GPUAdapter
	config  PipelineConfig

	// Computed dimensions
	tileColumns int
	tileRows    int
	tileCount   int

	// GPU resources (if using GPU path)
	// These will be populated in Phase 2 when algorithms are extracted

	// State
	initialized bool
	useGPU      bool
}

// NewHybridPipeline creates a new rendering pipeline.
//
// Parameters:
//   - adapter: GPU adapter implementation
//   - config: pipeline configuration
//
// Returns an error if initialization fails.
func NewHybridPipeline(adapter GPUAdapter, config *PipelineConfig) (*HybridPipeline, error) {
	if adapter == nil {
		return nil, fmt.Errorf("gpucore: adapter is required")
	}
	if config == nil {
		return nil, fmt.Errorf("gpucore: config is required")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("gpucore: invalid viewport size: %dx%d", config.Width, config.Height)
	}

	// Apply defaults
	cfg := *config
	if cfg.MaxPaths <= 0 {
		cfg.MaxPaths = 10000
	}
	if cfg.MaxSegments <= 0 {
		cfg.MaxSegments = cfg.MaxPaths * MaxSegmentsPerCurve
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}

	// Calculate tile dimensions
	tileColumns := (cfg.Width + TileSize - 1) / TileSize
	tileRows := (cfg.Height + TileSize - 1) / TileSize
	tileCount := tileColumns * tileRows

	// Determine if GPU path is available
	useGPU := !cfg.UseCPUFallback && adapter.SupportsCompute()

	p := &HybridPipeline{
		adapter:     adapter,
		config:      cfg,
		tileColumns: tileColumns,
		tileRows:    tileRows,
		tileCount:   tileCount,
		useGPU:      useGPU,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

// init initializes GPU resources if using GPU path.
func (p *HybridPipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Phase 1: Just mark as initialized
	// Phase 2 will add shader compilation and pipeline creation

	p.initialized = true
	return nil
}

// Execute runs the rendering pipeline on the CPU fallback path.
//
// It orchestrates the three pipeline stages:
//  1. Flatten: curves in elements/points are subdivided into line segments
//     in viewport space (gpucore/flatten.go).
//  2. Coarse: segments are swept into a single sorted edge list
//     (raster.EdgeList), grounded on raster/edge.go's active-edge-table
//     primitives.
//  3. Fine: a per-scanline active edge table accumulates winding and
//     writes binary (0/255) coverage into tile-ordered blocks of
//     TileSize*TileSize bytes.
//
// GPU compute is not wired up (no GPU backend ships with this module); the
// adapter's SupportsCompute result only affects UseGPU bookkeeping.
func (p *HybridPipeline) Execute(elements []PathElement, points []Point2, transform AffineTransform, fillRule FillRule) ([]uint8, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, fmt.Errorf("gpucore: pipeline not initialized")
	}

	segments := flattenElements(elements, points, transform, p.config.Tolerance)

	coverage := make([]uint8, p.tileCount*TileSize*TileSize)
	if len(segments) == 0 || p.tileColumns == 0 {
		return coverage, nil
	}

	edgeList := raster.NewEdgeList()
	for _, s := range segments {
		edgeList.AddLine(s.X0, s.Y0, s.X1, s.Y1)
	}
	edgeList.SortByYMin()
	edges := edgeList.Edges()

	aet := raster.NewSimpleAET()
	nextEdge := 0
	width := p.config.Width
	height := p.config.Height

	for y := 0; y < height; y++ {
		fy := float32(y) + 0.5
		for nextEdge < len(edges) && edges[nextEdge].YMin <= fy {
			aet.InsertEdge(&edges[nextEdge], fy)
			nextEdge++
		}
		aet.RemoveExpired(fy)
		aet.UpdateX(fy)
		aet.SortByX()

		active := aet.Active()
		winding := 0
		idx := 0
		tileRow := (y / TileSize) * p.tileColumns
		localY := y % TileSize

		for x := 0; x < width; x++ {
			fx := float32(x) + 0.5
			for idx < len(active) && active[idx].X <= fx {
				winding += int(active[idx].Edge.Winding)
				idx++
			}

			var inside bool
			if fillRule == FillRuleEvenOdd {
				inside = winding%2 != 0
			} else {
				inside = winding != 0
			}
			if !inside {
				continue
			}

			tileIdx := tileRow + x/TileSize
			localX := x % TileSize
			coverage[tileIdx*TileSize*TileSize+localY*TileSize+localX] = 255
		}
	}

	return coverage, nil
}

// Resize updates the pipeline for a new viewport size.
func (p *HybridPipeline) Resize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpucore: invalid viewport size: %dx%d", width, height)
	}

	p.config.Width = width
	p.config.Height = height
	p.tileColumns = (width + TileSize - 1) / TileSize
	p.tileRows = (height + TileSize - 1) / TileSize
	p.tileCount = p.tileColumns * p.tileRows

	// Phase 2 will handle buffer reallocation if needed

	return nil
}

// SetTolerance updates the flattening tolerance.
func (p *HybridPipeline) SetTolerance(tolerance float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if tolerance > 0 {
		p.config.Tolerance = tolerance
	}
}

// Tolerance returns the current flattening tolerance.
func (p *HybridPipeline) Tolerance() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config.Tolerance
}

// UseGPU returns whether the adapter supports compute and CPU fallback is
// off. Execute runs on the CPU either way.
func (p *HybridPipeline) UseGPU() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.useGPU
}

// SetUseCPUFallback enables or disables CPU fallback mode.
// When enabled, all stages run on CPU regardless of GPU support.
func (p *HybridPipeline) SetUseCPUFallback(useCPU bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config.UseCPUFallback = useCPU
	p.useGPU = !useCPU && p.adapter.SupportsCompute()
}

// Config returns a copy of the pipeline configuration.
func (p *HybridPipeline) Config() PipelineConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// TileColumns returns the number of tile columns.
func (p *HybridPipeline) TileColumns() int {
	return p.tileColumns
}

// TileRows returns the number of tile rows.
func (p *HybridPipeline) TileRows() int {
	return p.tileRows
}

// TileCount returns the total number of tiles.
func (p *HybridPipeline) TileCount() int {
	return p.tileCount
}

// IsInitialized returns whether the pipeline is initialized.
func (p *HybridPipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Destroy releases all GPU resources.
func (p *HybridPipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Phase 2 will add resource cleanup
	// For now, just mark as uninitialized

	p.initialized = false
}

// PipelineStats contains pipeline execution statistics.
type PipelineStats struct {
	// PathCount is the number of path elements processed.
	PathCount int

	// SegmentCount is the number of segments generated.
	SegmentCount int

	// TileEntryCount is the number of tile entries generated.
	TileEntryCount int

	// FlattenTimeNS is the time spent in the flatten stage (nanoseconds).
	FlattenTimeNS int64

	// CoarseTimeNS is the time spent in the coarse stage (nanoseconds).
	CoarseTimeNS int64

	// FineTimeNS is the time spent in the fine stage (nanoseconds).
	FineTimeNS int64

	// TotalTimeNS is the total execution time (nanoseconds).
	TotalTimeNS int64

	// UsedGPU indicates whether GPU was used for this execution.
	UsedGPU bool
}

// ExecuteWithStats runs the pipeline and returns execution statistics.
// Only PathCount and UsedGPU are filled in; the segment, tile-entry and
// timing fields are left zero.
func (p *HybridPipeline) ExecuteWithStats(elements []PathElement, points []Point2, transform AffineTransform, fillRule FillRule) ([]uint8, *PipelineStats, error) {
	coverage, err := p.Execute(elements, points, transform, fillRule)
	if err != nil {
		return nil, nil, err
	}

	stats := &PipelineStats{
		PathCount: len(elements),
		UsedGPU:   false, // Execute always runs on the CPU
	}

	return coverage, stats, nil
}
