// Package ambient draws the faint data glyphs that drift behind the page.
package ambient

import (
	"log/slog"
	"time"

	"github.com/gogpu/gg"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
)

// ColorToken is the theme property the glyphs are painted with.
const ColorToken = "--muted-foreground"

var fallbackColor = gg.Hex("#64748b")

// FrameHook is called after every drawn frame.
type FrameHook func(now time.Duration)

type Renderer struct {
	win    *host.Window
	gfx    render.Provider
	glyphs []Glyph
	logger *slog.Logger
	onDraw FrameHook

	surface  *render.Surface
	listener host.ListenerID
	frame    host.FrameID
	mounted  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithGlyphs(g []Glyph) Option {
	return func(r *Renderer) { r.glyphs = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

func WithFrameHook(h FrameHook) Option {
	return func(r *Renderer) { r.onDraw = h }
}

func New(win *host.Window, gfx render.Provider, opts ...Option) *Renderer {
	r := &Renderer{
		win:    win,
		gfx:    gfx,
		glyphs: DefaultGlyphs(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount attaches a viewport sized surface and starts the frame loop. It is a
// no-op when already mounted, and silently skips rendering when the host has
// no window or no drawing capability.
func (r *Renderer) Mount() {
	if r.mounted || r.win == nil || r.gfx == nil {
		return
	}

	w, h := r.win.Size()
	s, err := r.gfx.NewSurface(w, h)
	if err != nil {
		r.logger.Debug("ambient canvas unavailable", "error", err)
		return
	}

	r.surface = s
	r.win.Document().AppendChild(s)
	r.listener = r.win.AddResizeListener(r.resize)
	r.frame = r.win.RequestAnimationFrame(r.animate)
	r.mounted = true
	r.logger.Debug("ambient canvas mounted", "width", w, "height", h)
}

// Unmount stops the frame loop and detaches the surface. Safe to call twice.
func (r *Renderer) Unmount() {
	if !r.mounted {
		return
	}
	r.win.RemoveResizeListener(r.listener)
	r.win.CancelAnimationFrame(r.frame)
	r.win.Document().RemoveChild(r.surface)
	r.surface.Release()
	r.surface = nil
	r.mounted = false
	r.logger.Debug("ambient canvas unmounted")
}

// Surface returns the mounted surface, or nil.
func (r *Renderer) Surface() *render.Surface {
	return r.surface
}

func (r *Renderer) resize(width, height int) {
	if r.surface == nil {
		return
	}
	if err := r.surface.Resize(width, height); err != nil {
		r.logger.Warn("ambient canvas resize failed", "error", err)
	}
}

// animate schedules the next frame before drawing so a hook that unmounts
// cancels it.
func (r *Renderer) animate(now time.Duration) {
	r.frame = r.win.RequestAnimationFrame(r.animate)
	r.DrawFrame(now)
}

// DrawFrame renders the glyphs as they appear at now.
func (r *Renderer) DrawFrame(now time.Duration) {
	if r.surface == nil {
		return
	}

	col, ok := render.ParseColor(r.win.Property(ColorToken))
	if !ok {
		col = fallbackColor
	}

	t := now.Seconds()
	r.surface.Draw(func(c *render.Canvas) {
		c.Clear()
		for i, g := range r.glyphs {
			c.SetColor(col, g.Opacity)
			g.draw(c, g.Position(t, i), t)
		}
	})

	if r.onDraw != nil {
		r.onDraw(now)
	}
}
