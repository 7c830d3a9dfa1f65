package render

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	monoOnce   sync.Once
	monoSource *text.FontSource

	facesMu sync.Mutex
	faces   = map[float64]text.Face{}
)

func monoFace(size float64) text.Face {
	monoOnce.Do(func() {
		src, err := text.NewFontSource(gomono.TTF)
		if err != nil {
			return
		}
		monoSource = src
	})
	if monoSource == nil {
		return nil
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	f, ok := faces[size]
	if !ok {
		f = monoSource.Face(size)
		faces[size] = f
	}
	return f
}

// Canvas is the immediate-mode drawing API handed out by Surface.Draw.
type Canvas struct {
	dc *gg.Context
}

func (c *Canvas) Width() float64  { return float64(c.dc.Width()) }
func (c *Canvas) Height() float64 { return float64(c.dc.Height()) }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// SetColor sets fill and stroke colour; alpha multiplies the colour's own alpha.
func (c *Canvas) SetColor(col gg.RGBA, alpha float64) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A*alpha)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	_ = c.dc.Fill()
}

func (c *Canvas) FillRoundedRect(x, y, w, h, r float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
	_ = c.dc.Fill()
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	_ = c.dc.Fill()
}

func (c *Canvas) FillCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
	_ = c.dc.Fill()
}

func (c *Canvas) StrokeCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
	_ = c.dc.Stroke()
}

func (c *Canvas) StrokeLine(a, b Point) {
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	_ = c.dc.Stroke()
}

// StrokePolyline strokes an open path through pts.
func (c *Canvas) StrokePolyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	_ = c.dc.Stroke()
}

// StrokeCubic strokes a cubic Bézier path: start, then (c1, c2, end) triples.
func (c *Canvas) StrokeCubic(start Point, segs [][3]Point) {
	c.dc.MoveTo(start.X, start.Y)
	for _, s := range segs {
		c.dc.CubicTo(s[0].X, s[0].Y, s[1].X, s[1].Y, s[2].X, s[2].Y)
	}
	_ = c.dc.Stroke()
}

// FillText draws monospace text with its baseline at y.
func (c *Canvas) FillText(s string, x, y, size float64) {
	face := monoFace(size)
	if face == nil {
		return
	}
	c.dc.SetFont(face)
	c.dc.DrawString(s, x, y)
}

// FillTextCentered draws monospace text horizontally centred on x.
func (c *Canvas) FillTextCentered(s string, x, y, size float64) {
	face := monoFace(size)
	if face == nil {
		return
	}
	c.dc.SetFont(face)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0)
}

// MeasureText returns the size of s in monospace at the given point size.
func (c *Canvas) MeasureText(s string, size float64) (float64, float64) {
	face := monoFace(size)
	if face == nil {
		return 0, 0
	}
	c.dc.SetFont(face)
	return c.dc.MeasureString(s)
}
