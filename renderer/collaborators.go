package renderer

import (
	"golang.org/x/image/math/fixed"

	"github.com/inkwell/vgfx"
)

// GlyphMetrics locates one glyph within a font atlas texture. Advance
// and Bearing use the same 26.6 fixed-point unit golang.org/x/image/font
// returns from GlyphAdvance and GlyphBounds, so a host backed by a real
// font.Face can hand metrics through without a float conversion.
type GlyphMetrics struct {
	AtlasRect vgfx.Rect
	Advance   fixed.Int26_6
	Bearing   fixed.Point26_6
}

// GradientStop is one color/offset pair of a gradient paint.
type GradientStop struct {
	Offset float64
	Color  vgfx.RGBA
}

// ImageData is the decoded pixel payload get_image returns: tightly
// packed rows, Channels bytes per pixel (3 for RGB, 4 for RGBA).
type ImageData struct {
	Pixels   []byte
	Size     [2]int
	Channels int
}

// FontAtlas is the resolved handle and glyph table get_font_atlas
// returns; AtlasTexture is opaque to the renderer beyond the paint
// texture binding it wraps.
type FontAtlas struct {
	AtlasTexture uint64
	Glyphs       map[rune]GlyphMetrics
}

// Gradient is the resolved stop list and paint-space transform
// get_gradient returns.
type Gradient struct {
	Stops     []GradientStop
	Transform vgfx.Matrix
}

// ResourceManager resolves opaque paint ids into the swatch color,
// image, font atlas, and gradient data a host application owns. The
// renderer never loads these resources itself; it only asks and falls
// back to a visible failure color when asked for an id the manager
// doesn't know. GetSwatch supplements the three resource queries named
// for images, font atlases, and gradients: a swatch paint resolves to a
// plain color the same way a solid paint does (both only rewrite the
// z-index and paint-coord bytes of a vertex), so it needs a resolution
// path the other three don't model.
type ResourceManager interface {
	GetSwatch(id uint64) (vgfx.RGBA, error)
	GetImage(id uint64) (ImageData, error)
	GetFontAtlas(id uint64) (FontAtlas, error)
	GetGradient(id uint64) (Gradient, error)
}

// NullResourceManager rejects every lookup, for renderers that draw
// solid-color content only.
type NullResourceManager struct{}

func (NullResourceManager) GetSwatch(uint64) (vgfx.RGBA, error) {
	return vgfx.RGBA{}, errResourceNotFound
}
func (NullResourceManager) GetImage(uint64) (ImageData, error) {
	return ImageData{}, errResourceNotFound
}
func (NullResourceManager) GetFontAtlas(uint64) (FontAtlas, error) {
	return FontAtlas{}, errResourceNotFound
}
func (NullResourceManager) GetGradient(uint64) (Gradient, error) {
	return Gradient{}, errResourceNotFound
}

var _ ResourceManager = NullResourceManager{}
