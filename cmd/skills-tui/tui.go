package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
	"github.com/Sunil5411/portfolio/internal/skills"
)

// tui draws the skill spiral on a terminal grid. The visualizer keeps working
// in its 800x600 space; cells are scaled into it.
type tui struct {
	screen tcell.Screen
	win    *host.Window
	vis    *skills.Visualizer
	logger *slog.Logger

	status  string
	pressed bool
}

func newTUI(screen tcell.Screen, opener skills.Opener, logger *slog.Logger) *tui {
	cols, rows := screen.Size()
	t := &tui{
		screen: screen,
		win:    host.NewWindow(max(cols, 1), max(rows, 1)),
		vis:    skills.New(skills.Catalog(), skills.WithOpener(opener), skills.WithLogger(logger)),
		logger: logger,
	}
	t.vis.Mount(t.win, nil)
	return t
}

func (t *tui) close() {
	t.vis.Unmount()
}

// plot area excludes the two status rows.
func (t *tui) plot() (int, int) {
	cols, rows := t.screen.Size()
	return cols, max(rows-2, 1)
}

func (t *tui) toCell(p render.Point) (int, int) {
	cols, rows := t.plot()
	return int(math.Round(p.X / skills.DefaultWidth * float64(cols-1))),
		int(math.Round(p.Y / skills.DefaultHeight * float64(rows-1)))
}

func (t *tui) toPoint(col, row int) render.Point {
	cols, rows := t.plot()
	return render.Point{
		X: float64(col) / float64(max(cols-1, 1)) * skills.DefaultWidth,
		Y: float64(row) / float64(max(rows-1, 1)) * skills.DefaultHeight,
	}
}

// handle applies one event. It returns false when the user asked to quit.
func (t *tui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			t.vis.SetCategory(nextCategory(t.vis.Category()))
		case tcell.KeyEnter:
			t.vis.TogglePlaying()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if s := []rune(t.vis.Search()); len(s) > 0 {
				t.vis.SetSearch(string(s[:len(s)-1]))
			}
		case tcell.KeyCtrlU:
			t.vis.SetSearch("")
		case tcell.KeyRune:
			t.vis.SetSearch(t.vis.Search() + string(ev.Rune()))
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		p := t.toPoint(col, row)
		t.pointAt(p)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.pressed {
			t.click()
		}
		t.pressed = pressed

	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.win.Resize(cols, rows)
		t.screen.Sync()
	}
	return true
}

// pointAt hovers the node drawn in the cell under p. Cells are much coarser
// than nodes, so the pointer snaps to the nearest node within one cell.
func (t *tui) pointAt(p render.Point) {
	cols, rows := t.plot()
	cellW := skills.DefaultWidth / float64(cols)
	cellH := skills.DefaultHeight / float64(rows)
	reach := math.Hypot(cellW, cellH)

	best, bestD := -1, math.Inf(1)
	nodes := t.vis.Nodes()
	for i, n := range nodes {
		if d := math.Hypot(n.Center.X-p.X, n.Center.Y-p.Y); d < bestD {
			best, bestD = i, d
		}
	}
	if best >= 0 && bestD <= reach+nodes[best].Radius {
		c := nodes[best].Center
		t.vis.PointerMove(c.X, c.Y)
		return
	}
	t.vis.PointerLeave()
}

// click opens the hovered node's link.
func (t *tui) click() {
	for _, n := range t.vis.Nodes() {
		if !n.Hovered {
			continue
		}
		it, ok, err := t.vis.Click(n.Center.X, n.Center.Y)
		switch {
		case err != nil:
			t.status = err.Error()
			t.logger.Warn("open link", "skill", it.Name, "error", err)
		case ok:
			t.status = "opened " + it.Link
		}
		return
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

func (t *tui) put(col, row int, s string, style tcell.Style) {
	cols, _ := t.screen.Size()
	for _, r := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			t.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func color(hex string) tcell.Color {
	return tcell.GetColor(hex)
}

// draw renders the current visualizer state and shows it.
func (t *tui) draw() {
	t.screen.Clear()
	nodes := t.vis.Nodes()

	guide := tcell.StyleDefault.Foreground(color(skills.DefaultColor)).Dim(true)
	for i := 1; i < len(nodes); i++ {
		t.line(nodes[i-1].Center, nodes[i].Center, guide)
	}

	for _, n := range nodes {
		col, row := t.toCell(n.Center)
		glyph := '●'
		style := tcell.StyleDefault.Foreground(color(n.Color))
		if n.Hovered {
			glyph = '◉'
			style = style.Bold(true)
		}
		t.screen.SetContent(col, row, glyph, nil, style)
		t.put(col+2, row, n.Item.Name, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	if len(nodes) == 0 {
		cols, rows := t.plot()
		msg := "No skills match your search"
		t.put((cols-len(msg))/2, rows/2, msg, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	if tip := t.vis.Tooltip(); tip != nil {
		t.drawTooltip(tip)
	}
	t.drawStatus()
	t.screen.Show()
}

// line plots a dotted segment between two spiral points.
func (t *tui) line(a, b render.Point, style tcell.Style) {
	c0, r0 := t.toCell(a)
	c1, r1 := t.toCell(b)
	steps := max(abs(c1-c0), abs(r1-r0))
	for s := 1; s < steps; s++ {
		f := float64(s) / float64(steps)
		col := c0 + int(math.Round(f*float64(c1-c0)))
		row := r0 + int(math.Round(f*float64(r1-r0)))
		t.screen.SetContent(col, row, '·', nil, style)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (t *tui) drawTooltip(tip *skills.Tooltip) {
	col, row := t.toCell(tip.Position)
	width := 0
	for _, l := range tip.Lines {
		width = max(width, len([]rune(l)))
	}
	cols, rows := t.plot()
	col = min(col, cols-width-2)
	row = min(row, rows-len(tip.Lines))

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for i, l := range tip.Lines {
		t.put(col, row+i, fmt.Sprintf(" %-*s ", width, l), style)
	}
}

func (t *tui) drawStatus() {
	_, rows := t.screen.Size()
	play := "playing"
	if !t.vis.Playing() {
		play = "paused"
	}
	bar := tcell.StyleDefault.Reverse(true)
	t.put(0, rows-2, fmt.Sprintf(" search: %-20s category: %-10s %-8s %2d skills ",
		t.vis.Search(), t.vis.Category(), play, len(t.vis.Visible())), bar)

	help := "type to search · Tab category · Enter play/pause · click to open · Esc quit"
	if t.status != "" {
		help = t.status
	}
	t.put(0, rows-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}
