package ambient

import (
	"math"

	"github.com/Sunil5411/portfolio/internal/render"
)

// Kind selects the shape drawn for a Glyph.
type Kind string

const (
	Chart   Kind = "chart"
	Formula Kind = "formula"
	Arrow   Kind = "arrow"
	Code    Kind = "code"
)

// Glyph is a decorative shape pinned to an anchor. It never changes after
// creation; only where it is drawn oscillates with time.
type Glyph struct {
	Anchor  render.Point
	Kind    Kind
	Opacity float64
}

// DefaultGlyphs is the glyph set shown behind the page.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Anchor: render.Point{X: 100, Y: 100}, Kind: Chart, Opacity: 0.1},
		{Anchor: render.Point{X: 300, Y: 200}, Kind: Formula, Opacity: 0.08},
		{Anchor: render.Point{X: 500, Y: 150}, Kind: Arrow, Opacity: 0.12},
		{Anchor: render.Point{X: 700, Y: 300}, Kind: Code, Opacity: 0.09},
		{Anchor: render.Point{X: 200, Y: 400}, Kind: Chart, Opacity: 0.11},
		{Anchor: render.Point{X: 600, Y: 450}, Kind: Formula, Opacity: 0.07},
	}
}

const (
	driftX   = 20.0
	driftY   = 15.0
	fontSize = 14.0
)

// Offset is the drift of glyph i at t seconds. Indexing the phase keeps
// neighbouring glyphs out of step.
func Offset(t float64, i int) render.Point {
	fi := float64(i)
	return render.Point{
		X: driftX * math.Sin(t+fi),
		Y: driftY * math.Cos(t+fi*0.5),
	}
}

// Position is where glyph i is drawn at t seconds.
func (g Glyph) Position(t float64, i int) render.Point {
	o := Offset(t, i)
	return render.Point{X: g.Anchor.X + o.X, Y: g.Anchor.Y + o.Y}
}

// draw paints g at p. The canvas colour must already be set.
func (g Glyph) draw(c *render.Canvas, p render.Point, t float64) {
	switch g.Kind {
	case Chart:
		for i := 0; i < 4; i++ {
			h := 20 + math.Sin(t+float64(i))*10
			c.FillRect(p.X+float64(i)*8, p.Y-h, 6, h)
		}
	case Formula:
		c.FillText("=SUM()", p.X, p.Y, fontSize)
	case Arrow:
		c.FillPolygon([]render.Point{
			{X: p.X, Y: p.Y},
			{X: p.X + 20, Y: p.Y - 10},
			{X: p.X + 15, Y: p.Y - 5},
			{X: p.X + 20, Y: p.Y},
			{X: p.X + 15, Y: p.Y + 5},
			{X: p.X + 20, Y: p.Y + 10},
		})
	case Code:
		c.FillText("SQL", p.X, p.Y, fontSize)
	}
}
