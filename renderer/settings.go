package renderer

import "github.com/inkwell/vgfx"

// Settings is the renderer's configuration surface: flattening/stroking
// tolerances, the culling threshold below which a drawable is skipped
// entirely, and the UI overlay defaults the debug entry points draw with.
type Settings struct {
	FlatteningTolerance float64
	StrokingTolerance   float64
	CullingThreshold    float64
	UIHandleSize        float64
	UILineWidth         float64
	UIPrimaryColor      vgfx.RGBA

	MaxTileVertices int
	MaxCurves       int
	MaxFillVertices int
	MaxTextureUnits int
	CacheSoftLimit  int
}

// DefaultSettings returns the settings a new Renderer uses unless
// overridden by Option values.
func DefaultSettings() Settings {
	return Settings{
		FlatteningTolerance: 0.25,
		StrokingTolerance:   0.25,
		CullingThreshold:    0.5,
		UIHandleSize:        8.0,
		UILineWidth:         1.5,
		UIPrimaryColor:      vgfx.RGB(0.2, 0.5, 1.0),

		MaxTileVertices: 4096,
		MaxCurves:       2048,
		MaxFillVertices: 4096,
		MaxTextureUnits: 16,
		CacheSoftLimit:  4096,
	}
}

// Option configures a Settings value; pass a list of Options to New.
type Option func(*Settings)

func WithFlatteningTolerance(t float64) Option { return func(s *Settings) { s.FlatteningTolerance = t } }
func WithStrokingTolerance(t float64) Option   { return func(s *Settings) { s.StrokingTolerance = t } }
func WithCullingThreshold(t float64) Option    { return func(s *Settings) { s.CullingThreshold = t } }
func WithUIHandleSize(px float64) Option       { return func(s *Settings) { s.UIHandleSize = px } }
func WithUILineWidth(px float64) Option        { return func(s *Settings) { s.UILineWidth = px } }
func WithUIPrimaryColor(c vgfx.RGBA) Option    { return func(s *Settings) { s.UIPrimaryColor = c } }

// WithBatchCapacity overrides the batch packer's per-buffer limits and
// the maximum number of simultaneously bound paint texture units.
func WithBatchCapacity(maxTileVertices, maxCurves, maxFillVertices, maxTextureUnits int) Option {
	return func(s *Settings) {
		s.MaxTileVertices = maxTileVertices
		s.MaxCurves = maxCurves
		s.MaxFillVertices = maxFillVertices
		s.MaxTextureUnits = maxTextureUnits
	}
}

// WithCacheSoftLimit overrides the viewport cache's memoization table
// soft eviction limit.
func WithCacheSoftLimit(n int) Option {
	return func(s *Settings) { s.CacheSoftLimit = n }
}
