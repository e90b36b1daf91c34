package renderer

import (
	"log/slog"

	"github.com/inkwell/vgfx"
	"github.com/inkwell/vgfx/batch"
	"github.com/inkwell/vgfx/builder"
	"github.com/inkwell/vgfx/draw"
	"github.com/inkwell/vgfx/gpu"
	"github.com/inkwell/vgfx/path"
	"github.com/inkwell/vgfx/rcache"
	"github.com/inkwell/vgfx/tile"
)

// Renderer is the single-threaded, cooperative-scheduling entry point:
// one BeginFrame/Draw*/EndFrame cycle per frame, no internal locks, no
// cancellation or timeouts. A Renderer is not safe for concurrent use
// from multiple goroutines.
type Renderer struct {
	device    *gpu.Device
	resources ResourceManager
	settings  Settings

	cache         *rcache.Cache
	packer        *batch.Packer
	tilerNonZero  *tile.Tiler
	tilerEvenOdd  *tile.Tiler

	viewport    Viewport
	visibleRect vgfx.Rect
	frameOpen   bool
	debugOn     bool

	missingLogged map[uint64]bool
	counters      Counters
}

// New creates a Renderer bound to handle (the host's GPU device, never
// created by the renderer itself) and resources (the host's paint
// resolver). Pass Option values to override DefaultSettings.
func New(handle gpu.DeviceHandle, resources ResourceManager, opts ...Option) *Renderer {
	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}
	if resources == nil {
		resources = NullResourceManager{}
	}
	return &Renderer{
		device:        gpu.NewDevice(handle),
		resources:     resources,
		settings:      settings,
		cache:         rcache.New(settings.CacheSoftLimit),
		packer:        batch.New(settings.MaxTileVertices, settings.MaxCurves, settings.MaxFillVertices, settings.MaxTextureUnits),
		tilerNonZero:  tile.New(vgfx.FillRuleNonZero, settings.FlatteningTolerance),
		tilerEvenOdd:  tile.New(vgfx.FillRuleEvenOdd, settings.FlatteningTolerance),
		missingLogged: make(map[uint64]bool),
	}
}

// SetDebugEnabled toggles the __debug_* overlay entry points. They are
// no-ops while disabled, giving release builds the same behavior as a
// build tag without needing one.
func (r *Renderer) SetDebugEnabled(on bool) { r.debugOn = on }

// Stats reports the renderer's cumulative error counters.
func (r *Renderer) Stats() Stats { return Stats{Counters: r.counters} }

// BeginFrame starts a new frame against opts.Viewport. If the visible
// rect changed since the previous frame (or opts.IgnoreCache is set),
// the viewport cache's validity grid is reset, discarding every cached
// Drawable whose valid_rect no longer covers the visible area.
func (r *Renderer) BeginFrame(opts RenderOptions) {
	visible := opts.Viewport.VisibleRect()
	if opts.IgnoreCache || visible != r.visibleRect {
		subdiv := opts.CacheGridSubdivisions
		if subdiv < 1 {
			subdiv = 8
		}
		r.cache.SetGridRect(visible, subdiv)
	}
	r.viewport = opts.Viewport
	r.visibleRect = visible
	r.frameOpen = true
}

// InvalidateRect marks visible-rect cells rect touches invalid, per the
// document cache callback contract: a document mutates by calling this
// between frames, never by reaching into the cache directly.
func (r *Renderer) InvalidateRect(rect vgfx.Rect) {
	r.cache.InvalidateRect(rect)
}

// Clear releases id's cached bounding rect and drawable, per the
// document cache's clear(id) callback.
func (r *Renderer) Clear(id uint64) {
	r.cache.Clear(id)
}

// DrawPath tiles and batches p under fill, memoizing the result in the
// viewport cache under id so a later frame with an unchanged visible
// rect and no intervening invalidation can reuse it without retiling.
func (r *Renderer) DrawPath(id uint64, p *path.Path, fill vgfx.Fill) {
	if !r.frameOpen {
		r.invariantViolation("DrawPath called outside a frame")
		return
	}
	bounds := r.cache.GetBoundingRect(id, func() vgfx.Rect { return p.BoundingRect(nil) })
	if r.culled(bounds) {
		return
	}

	if entry, ok := r.cache.Lookup(id, bounds); ok {
		r.packer.PushDrawable(entry.Drawable)
		return
	}

	mp := builder.ToMonotone(p)
	style := r.resolveStyle(fill.Paint, fill.Rule == vgfx.FillRuleEvenOdd, 0)
	result := r.tilerFor(fill.Rule).Tile(mp, r.visibleRect, r.viewport.Zoom)
	drawable := draw.Assemble(result, mp, bounds, style)

	r.cache.SetBoundingRect(id, bounds)
	r.cache.Store(id, rcache.Entry{Drawable: drawable, ValidRect: r.visibleRect})
	r.packer.PushDrawable(drawable)
}

// DrawStroke offsets p into a fill outline under stroke's width, cap,
// join, and miter limit, then draws that outline with stroke's paint
// under the non-zero fill rule, so a stroke is always equivalent to
// filling its offset outline.
func (r *Renderer) DrawStroke(id uint64, p *path.Path, stroke vgfx.Stroke) {
	if !r.frameOpen {
		r.invariantViolation("DrawStroke called outside a frame")
		return
	}
	outline := builder.StrokeToFill(p, stroke, r.settings.StrokingTolerance)
	r.DrawPath(id, outline, vgfx.Fill{Paint: stroke.Paint, Rule: vgfx.FillRuleNonZero})
}

// EndFrame closes the frame and drains every batch the packer
// accumulated, including one forced by a final partial flush. Batches
// left unflushed by a missed EndFrame call (the caller never invokes it)
// stay pending and drain on the next call; no frame is ever silently
// dropped.
func (r *Renderer) EndFrame() []batch.Flushed {
	r.frameOpen = false
	return r.packer.Drain()
}

func (r *Renderer) tilerFor(rule vgfx.FillRule) *tile.Tiler {
	if rule == vgfx.FillRuleEvenOdd {
		return r.tilerEvenOdd
	}
	return r.tilerNonZero
}

// culled reports whether bounds is small enough, at the current zoom,
// to skip entirely rather than tile and batch.
func (r *Renderer) culled(bounds vgfx.Rect) bool {
	screenArea := bounds.Width() * bounds.Height() * r.viewport.Zoom * r.viewport.Zoom
	return screenArea < r.settings.CullingThreshold
}

// resolveStyle turns a Paint into a draw.Style, consulting the resource
// manager for non-solid paints and falling back to magenta (logged once
// per id) when the manager can't resolve it.
func (r *Renderer) resolveStyle(paint vgfx.Paint, evenOdd bool, zIndex uint32) draw.Style {
	color := paint.Color
	paintType := draw.PaintSolid
	var paintCoord uint32

	switch paint.Kind {
	case vgfx.PaintSwatch:
		paintType = draw.PaintSwatch
		if swatch, err := r.resources.GetSwatch(paint.ID); err != nil {
			color = r.resourceMiss(paint.ID)
		} else {
			color = swatch
		}
		paintCoord = uint32(paint.ID)
	case vgfx.PaintGradient:
		paintType = draw.PaintGradient
		if _, err := r.resources.GetGradient(paint.ID); err != nil {
			color = r.resourceMiss(paint.ID)
		}
		paintCoord = uint32(paint.ID)
	case vgfx.PaintTexture:
		paintType = draw.PaintTexture
		if _, err := r.resources.GetImage(paint.ID); err != nil {
			color = r.resourceMiss(paint.ID)
		}
		paintCoord = uint32(paint.ID)
	}

	return draw.Style{
		PaintID:    paint.ID,
		PaintType:  paintType,
		PaintCoord: paintCoord,
		Blend:      draw.BlendNormal,
		Color:      draw.PackColor(to255(color.R), to255(color.G), to255(color.B), to255(color.A)),
		ZIndex:     zIndex,
		EvenOdd:    evenOdd,
	}
}

func (r *Renderer) resourceMiss(id uint64) vgfx.RGBA {
	r.counters.ResourceMisses++
	if !r.missingLogged[id] {
		r.missingLogged[id] = true
		vgfx.Logger().Warn("renderer: paint resource not found, falling back to magenta", slog.Uint64("id", id))
	}
	return fallbackColor
}

func (r *Renderer) invariantViolation(msg string) {
	r.counters.InvariantViolations++
	vgfx.Logger().Warn("renderer: invariant violation", slog.String("reason", msg))
}

func to255(c float64) uint8 {
	v := c * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
