// Package particles renders the drifting wireframe primitives behind the hero
// section.
package particles

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/gogpu/gg"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
)

// Field mounts a Scene on a host window and animates it.
type Field struct {
	win    *host.Window
	gfx    render.Provider
	rng    *rand.Rand
	count  int
	logger *slog.Logger
	onDraw func(now time.Duration)

	scene    *Scene
	camera   *Camera
	surface  *render.Surface
	listener host.ListenerID
	frame    host.FrameID
	mounted  bool
}

type Option func(*Field)

func WithLogger(l *slog.Logger) Option {
	return func(f *Field) { f.logger = l }
}

// WithCount overrides PrimitiveCount.
func WithCount(n int) Option {
	return func(f *Field) { f.count = n }
}

// WithFrameHook registers a callback run after every rendered frame.
func WithFrameHook(h func(now time.Duration)) Option {
	return func(f *Field) { f.onDraw = h }
}

// New returns an unmounted field. rng is the only source of randomness, so a
// seeded rng gives a reproducible layout.
func New(win *host.Window, gfx render.Provider, rng *rand.Rand, opts ...Option) *Field {
	f := &Field{
		win:    win,
		gfx:    gfx,
		rng:    rng,
		count:  PrimitiveCount,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mount builds the scene, attaches a transparent surface and starts the frame
// loop. A host without a window or graphics is skipped without error.
func (f *Field) Mount() {
	if f.mounted || f.win == nil || f.gfx == nil || f.rng == nil {
		return
	}

	w, h := f.win.Size()
	s, err := f.gfx.NewSurface(w, h)
	if err != nil {
		f.logger.Debug("particle field unavailable", "error", err)
		return
	}

	f.surface = s
	f.scene = NewScene(f.rng, f.count)
	f.camera = NewCamera(float64(w) / float64(h))
	f.win.Document().AppendChild(s)
	f.listener = f.win.AddResizeListener(f.resize)
	f.frame = f.win.RequestAnimationFrame(f.animate)
	f.mounted = true
	f.logger.Debug("particle field mounted", "primitives", len(f.scene.Primitives))
}

// Unmount stops the loop, detaches the surface and releases the scene.
func (f *Field) Unmount() {
	if !f.mounted {
		return
	}
	f.win.RemoveResizeListener(f.listener)
	f.win.CancelAnimationFrame(f.frame)
	f.win.Document().RemoveChild(f.surface)
	f.surface.Release()
	f.scene.Dispose()

	f.surface = nil
	f.scene = nil
	f.camera = nil
	f.mounted = false
	f.logger.Debug("particle field unmounted")
}

func (f *Field) Scene() *Scene            { return f.scene }
func (f *Field) Camera() *Camera          { return f.camera }
func (f *Field) Surface() *render.Surface { return f.surface }

func (f *Field) resize(width, height int) {
	if f.camera == nil {
		return
	}
	f.camera.Aspect = float64(width) / float64(height)
	if err := f.surface.Resize(width, height); err != nil {
		f.logger.Warn("particle field resize failed", "error", err)
	}
}

func (f *Field) animate(now time.Duration) {
	f.frame = f.win.RequestAnimationFrame(f.animate)

	t := now.Seconds()
	f.scene.Step(t)
	Orbit(f.camera, t)
	f.Render()

	if f.onDraw != nil {
		f.onDraw(now)
	}
}

// Render strokes every primitive's wireframe as seen from the camera.
func (f *Field) Render() {
	if f.surface == nil {
		return
	}
	f.surface.Draw(func(c *render.Canvas) {
		c.Clear()
		c.SetLineWidth(1)

		r, u, fw := f.camera.basis()
		basis := [3]Vec3{r, u, fw}
		width, height := c.Width(), c.Height()

		for _, p := range f.scene.Primitives {
			g := f.scene.Geometry(p.Shape)
			if g == nil {
				continue
			}
			c.SetColor(gg.Hex(p.Material.Color), p.Material.Opacity)

			world := make([]Vec3, len(g.Vertices))
			for i, v := range g.Vertices {
				world[i] = v.rotateXY(p.Rotation.X, p.Rotation.Y).Add(p.Position)
			}
			for _, e := range g.Edges {
				a, b, ok := f.camera.projectSegment(world[e[0]], world[e[1]], basis, width, height)
				if ok {
					c.StrokeLine(a, b)
				}
			}
		}
	})
}
