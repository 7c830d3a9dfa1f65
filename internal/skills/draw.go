package skills

import (
	"github.com/gogpu/gg"

	"github.com/Sunil5411/portfolio/internal/render"
)

const (
	labelSize   = 10.0
	tooltipSize = 12.0
)

// Draw paints the spiral guide, the nodes with their labels and the tooltip.
// An empty filter result draws nothing but a cleared canvas.
func (v *Visualizer) Draw(c *render.Canvas) {
	c.Clear()

	nodes := v.Nodes()
	if len(nodes) == 0 {
		return
	}

	pts := make([]render.Point, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Center
	}
	if segs := cardinal(pts); len(segs) > 0 {
		c.SetColor(gg.Hex(DefaultColor), 0.3)
		c.SetLineWidth(2)
		c.StrokeCubic(pts[0], segs)
	}

	label := gg.Hex(v.labels)
	for _, n := range nodes {
		c.SetColor(gg.Hex(n.Color), 0.8)
		c.FillCircle(n.Center.X, n.Center.Y, n.Radius)
		c.SetColor(gg.White, 1)
		c.SetLineWidth(2)
		c.StrokeCircle(n.Center.X, n.Center.Y, n.Radius)

		c.SetColor(label, 1)
		c.FillTextCentered(n.Item.Name, n.Center.X, n.Center.Y+n.LabelOffset(), labelSize)
	}

	if t := v.tooltip; t != nil {
		drawTooltip(c, t)
	}
}

func drawTooltip(c *render.Canvas, t *Tooltip) {
	const pad, lineH = 8.0, 16.0
	w := 0.0
	for _, l := range t.Lines {
		lw, _ := c.MeasureText(l, tooltipSize)
		if lw > w {
			w = lw
		}
	}
	h := float64(len(t.Lines))*lineH + pad

	c.SetColor(gg.Black, 0.9)
	c.FillRoundedRect(t.Position.X, t.Position.Y, w+2*pad, h, 6)
	c.SetColor(gg.White, 1)
	for i, l := range t.Lines {
		c.FillText(l, t.Position.X+pad, t.Position.Y+pad/2+float64(i+1)*lineH-4, tooltipSize)
	}
}
