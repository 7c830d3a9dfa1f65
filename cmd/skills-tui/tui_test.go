package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunil5411/portfolio/internal/skills"
)

func newTestTUI(t *testing.T) (*tui, tcell.SimulationScreen, *[]string) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 32)
	t.Cleanup(screen.Fini)

	var opened []string
	opener := skills.OpenerFunc(func(url string) error {
		opened = append(opened, url)
		return nil
	})
	ui := newTUI(screen, opener, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(ui.close)
	return ui, screen, &opened
}

func row(screen tcell.SimulationScreen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, rows := screen.Size()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = row(screen, y)
	}
	return strings.Join(lines, "\n")
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typed(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTypingFilters(t *testing.T) {
	ui, screen, _ := newTestTUI(t)
	for _, r := range "sql" {
		assert.True(t, ui.handle(typed(r)))
	}
	assert.Equal(t, "sql", ui.vis.Search())
	assert.Len(t, ui.vis.Visible(), 2)

	ui.draw()
	text := screenText(screen)
	assert.Contains(t, text, "MySQL")
	assert.NotContains(t, text, "Python")
	assert.Contains(t, text, " 2 skills")

	ui.handle(key(tcell.KeyBackspace2))
	assert.Equal(t, "sq", ui.vis.Search())
	ui.handle(key(tcell.KeyCtrlU))
	assert.Empty(t, ui.vis.Search())
}

func TestCategoryAndPlayKeys(t *testing.T) {
	ui, _, _ := newTestTUI(t)
	ui.handle(key(tcell.KeyTab))
	assert.Equal(t, skills.Technical, ui.vis.Category())
	assert.Len(t, ui.vis.Visible(), 8)

	for i := 0; i < 4; i++ {
		ui.handle(key(tcell.KeyTab))
	}
	assert.Equal(t, skills.All, ui.vis.Category())

	ui.handle(key(tcell.KeyEnter))
	assert.False(t, ui.vis.Playing())
	before := ui.vis.Phase()
	ui.win.Tick(time.Second)
	assert.Equal(t, before, ui.vis.Phase())
}

func TestQuitKeys(t *testing.T) {
	ui, _, _ := newTestTUI(t)
	assert.False(t, ui.handle(key(tcell.KeyEscape)))
	assert.False(t, ui.handle(key(tcell.KeyCtrlC)))
}

func TestEmptyResult(t *testing.T) {
	ui, screen, _ := newTestTUI(t)
	for _, r := range "nothing" {
		ui.handle(typed(r))
	}
	ui.draw()
	assert.Contains(t, screenText(screen), "No skills match your search")
}

func TestMouseHoverAndClick(t *testing.T) {
	ui, screen, opened := newTestTUI(t)
	ui.vis.SetPlaying(false)
	for _, r := range "sql" {
		ui.handle(typed(r))
	}

	mysql := ui.vis.Nodes()[1]
	col, r := ui.toCell(mysql.Center)

	ui.handle(tcell.NewEventMouse(col, r, tcell.ButtonNone, tcell.ModNone))
	it, ok := ui.vis.Hovered()
	require.True(t, ok)
	assert.Equal(t, "MySQL", it.Name)

	ui.draw()
	assert.Contains(t, screenText(screen), "Level: 80%")
	assert.Equal(t, 1, ui.win.Document().Len())

	ui.handle(tcell.NewEventMouse(col, r, tcell.Button1, tcell.ModNone))
	ui.handle(tcell.NewEventMouse(col, r, tcell.Button1, tcell.ModNone))
	ui.handle(tcell.NewEventMouse(col, r, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []string{mysql.Item.Link}, *opened)

	ui.handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	_, ok = ui.vis.Hovered()
	assert.False(t, ok)
	assert.Zero(t, ui.win.Document().Len())
}

func TestCellMappingRoundTrip(t *testing.T) {
	ui, _, _ := newTestTUI(t)
	p := ui.toPoint(ui.toCell(ui.vis.Center()))
	assert.InDelta(t, 400, p.X, skills.DefaultWidth/99)
	assert.InDelta(t, 300, p.Y, skills.DefaultHeight/29)
}
