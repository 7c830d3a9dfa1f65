// Command preview opens a desktop window showing the particle field, the
// ambient glyphs and the interactive skill spiral.
//
// Type to search skills, Backspace to edit, Tab to change category, Enter to
// pause or resume, Esc to clear. Click a node to open its repositories.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"math/rand"
	"os"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Sunil5411/portfolio/internal/ambient"
	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/particles"
	"github.com/Sunil5411/portfolio/internal/render"
	"github.com/Sunil5411/portfolio/internal/skills"
)

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 800, "window height")
	seed := flag.Int64("seed", 0, "particle seed (0 = time based)")
	theme := flag.String("muted-foreground", "215.4 16.3% 46.9%", "glyph colour token")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := newGame(*width, *height, *seed, *theme, logger)
	defer g.close()

	ebiten.SetWindowTitle("Portfolio preview")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("preview stopped", "error", err)
		os.Exit(1)
	}
}

// layer mirrors one render surface into an ebiten image.
type layer struct {
	img     *ebiten.Image
	scratch *image.RGBA
}

func (l *layer) sync(s *render.Surface) *ebiten.Image {
	if s == nil {
		return nil
	}
	src := s.Image()
	b := src.Bounds()
	if l.img == nil || l.img.Bounds().Dx() != b.Dx() || l.img.Bounds().Dy() != b.Dy() {
		if l.img != nil {
			l.img.Deallocate()
		}
		l.img = ebiten.NewImage(b.Dx(), b.Dy())
		l.scratch = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		draw.Draw(l.scratch, l.scratch.Bounds(), src, b.Min, draw.Src)
		rgba = l.scratch
	}
	l.img.WritePixels(rgba.Pix)
	return l.img
}

func (l *layer) dispose() {
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
}

type game struct {
	win    *host.Window
	start  time.Time
	logger *slog.Logger

	field   *particles.Field
	glyphs  *ambient.Renderer
	spiral  *skills.Visualizer
	layers  [3]layer
	outside image.Point
}

func newGame(width, height int, seed int64, theme string, logger *slog.Logger) *game {
	win := host.NewWindow(width, height)
	win.SetProperty(ambient.ColorToken, theme)

	g := &game{
		win:     win,
		start:   time.Now(),
		logger:  logger,
		outside: image.Pt(width, height),
	}
	g.field = particles.New(win, render.Software{}, rand.New(rand.NewSource(seed)), particles.WithLogger(logger))
	g.glyphs = ambient.New(win, render.Software{}, ambient.WithLogger(logger))
	g.spiral = skills.New(skills.Catalog(),
		skills.WithOpener(skills.Browser{}),
		skills.WithLogger(logger),
	)

	g.field.Mount()
	g.glyphs.Mount()
	g.spiral.Mount(win, render.Software{})
	return g
}

func (g *game) close() {
	g.spiral.Unmount()
	g.glyphs.Unmount()
	g.field.Unmount()
	for i := range g.layers {
		g.layers[i].dispose()
	}
}

// spiralOrigin is the top-left corner of the spiral, centred in the window.
func (g *game) spiralOrigin() (float64, float64) {
	w, h := g.win.Size()
	return (float64(w) - skills.DefaultWidth) / 2, (float64(h) - skills.DefaultHeight) / 2
}

func (g *game) Update() error {
	if g.outside.X > 0 && g.outside.Y > 0 {
		g.win.Resize(g.outside.X, g.outside.Y)
	}

	g.handleKeys()
	g.handlePointer()

	g.win.Tick(time.Since(g.start))
	return nil
}

func (g *game) handleKeys() {
	search := g.spiral.Search()
	for _, r := range ebiten.AppendInputChars(nil) {
		search += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && search != "" {
		_, size := utf8.DecodeLastRuneInString(search)
		search = search[:len(search)-size]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		search = ""
	}
	g.spiral.SetSearch(search)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.spiral.SetCategory(nextCategory(g.spiral.Category()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.spiral.TogglePlaying()
	}
}

func nextCategory(c skills.Category) skills.Category {
	cats := skills.Categories()
	for i, info := range cats {
		if info.ID == c {
			return cats[(i+1)%len(cats)].ID
		}
	}
	return skills.All
}

func (g *game) handlePointer() {
	ox, oy := g.spiralOrigin()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)-ox, float64(cy)-oy

	if x < 0 || y < 0 || x > skills.DefaultWidth || y > skills.DefaultHeight {
		g.spiral.PointerLeave()
	} else {
		g.spiral.PointerMove(x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		it, ok, err := g.spiral.Click(x, y)
		switch {
		case err != nil:
			g.logger.Warn("open link", "error", err)
		case ok:
			g.logger.Info("opened", "skill", it.Name, "link", it.Link)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if img := g.layers[0].sync(g.field.Surface()); img != nil {
		screen.DrawImage(img, nil)
	}
	if img := g.layers[1].sync(g.glyphs.Surface()); img != nil {
		screen.DrawImage(img, nil)
	}
	if img := g.layers[2].sync(g.spiral.Surface()); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.spiralOrigin())
		screen.DrawImage(img, op)
	}

	play := "playing"
	if !g.spiral.Playing() {
		play = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("search: %q  category: %s  %s  (%d skills)",
		g.spiral.Search(), g.spiral.Category(), play, len(g.spiral.Visible())))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outside = image.Pt(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
