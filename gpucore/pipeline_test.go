package gpucore

import "testing"

func squareElements() ([]PathElement, []Point2) {
	points := []Point2{
		{X: 8, Y: 8},
		{X: 56, Y: 8},
		{X: 56, Y: 56},
		{X: 8, Y: 56},
	}
	elements := []PathElement{
		{Verb: 0, PointStart: 0, PointCount: 1}, // MoveTo
		{Verb: 1, PointStart: 1, PointCount: 1}, // LineTo
		{Verb: 1, PointStart: 2, PointCount: 1}, // LineTo
		{Verb: 1, PointStart: 3, PointCount: 1}, // LineTo
		{Verb: 4, PointStart: 0, PointCount: 0}, // Close
	}
	return elements, points
}

func TestHybridPipelineExecuteCoversInterior(t *testing.T) {
	p, err := NewHybridPipeline(NullAdapter{}, &PipelineConfig{Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("NewHybridPipeline: %v", err)
	}
	defer p.Destroy()

	if p.UseGPU() {
		t.Fatal("NullAdapter reports no compute support, pipeline should not use GPU")
	}

	elements, points := squareElements()
	identity := AffineTransform{A: 1, D: 1}

	coverage, stats, err := p.ExecuteWithStats(elements, points, identity, FillRuleNonZero)
	if err != nil {
		t.Fatalf("ExecuteWithStats: %v", err)
	}
	if len(coverage) != p.TileCount()*TileSize*TileSize {
		t.Fatalf("coverage length = %d, want %d", len(coverage), p.TileCount()*TileSize*TileSize)
	}
	if stats.PathCount != len(elements) {
		t.Fatalf("stats.PathCount = %d, want %d", stats.PathCount, len(elements))
	}

	centerTileRow := (32 / TileSize) * p.TileColumns()
	centerTile := centerTileRow + 32/TileSize
	centerIdx := centerTile*TileSize*TileSize + (32%TileSize)*TileSize + 32%TileSize
	if coverage[centerIdx] == 0 {
		t.Fatal("center of the square should be covered")
	}

	outsideTile := 0
	outsideIdx := outsideTile*TileSize*TileSize
	if coverage[outsideIdx] != 0 {
		t.Fatal("corner outside the square should not be covered")
	}
}

func TestHybridPipelineRejectsInvalidConfig(t *testing.T) {
	if _, err := NewHybridPipeline(nil, &PipelineConfig{Width: 64, Height: 64}); err == nil {
		t.Fatal("expected error for nil adapter")
	}
	if _, err := NewHybridPipeline(NullAdapter{}, nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewHybridPipeline(NullAdapter{}, &PipelineConfig{Width: 0, Height: 64}); err == nil {
		t.Fatal("expected error for invalid viewport size")
	}
}
