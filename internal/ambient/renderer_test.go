package ambient

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/render"
)

func TestOffsetDesynchronisesGlyphs(t *testing.T) {
	o0 := Offset(1.5, 0)
	o1 := Offset(1.5, 1)

	assert.InDelta(t, 20*math.Sin(1.5), o0.X, 1e-9)
	assert.InDelta(t, 15*math.Cos(1.5), o0.Y, 1e-9)
	assert.InDelta(t, 20*math.Sin(2.5), o1.X, 1e-9)
	assert.InDelta(t, 15*math.Cos(2.0), o1.Y, 1e-9)
	assert.NotEqual(t, o0, o1)
}

func TestPositionStaysNearAnchor(t *testing.T) {
	g := Glyph{Anchor: render.Point{X: 300, Y: 200}, Kind: Formula, Opacity: 0.08}
	for i := 0; i < 50; i++ {
		p := g.Position(float64(i)*0.37, 3)
		assert.LessOrEqual(t, math.Abs(p.X-300), 20.0)
		assert.LessOrEqual(t, math.Abs(p.Y-200), 15.0)
	}
}

func TestMountUnmountLeavesNothingBehind(t *testing.T) {
	win := host.NewWindow(800, 600)
	r := New(win, render.Software{})

	r.Mount()
	r.Mount()
	assert.Equal(t, 1, win.Document().Len())
	assert.Equal(t, 1, win.ResizeListeners())
	assert.Equal(t, 1, win.PendingFrames())

	r.Unmount()
	r.Unmount()
	assert.Zero(t, win.Document().Len())
	assert.Zero(t, win.ResizeListeners())
	assert.Zero(t, win.PendingFrames())
}

func TestRepeatedMountCycles(t *testing.T) {
	win := host.NewWindow(320, 240)
	r := New(win, render.Software{})
	for i := 0; i < 5; i++ {
		r.Mount()
		win.Tick(time.Duration(i) * 16 * time.Millisecond)
		r.Unmount()
	}
	assert.Zero(t, win.Document().Len())
	assert.Zero(t, win.PendingFrames())
	assert.Zero(t, win.ResizeListeners())
}

func TestFrameLoopKeepsScheduling(t *testing.T) {
	win := host.NewWindow(320, 240)
	frames := 0
	r := New(win, render.Software{}, WithFrameHook(func(time.Duration) { frames++ }))
	r.Mount()
	defer r.Unmount()

	for i := 0; i < 3; i++ {
		win.Tick(time.Duration(i) * 16 * time.Millisecond)
	}
	assert.Equal(t, 3, frames)
	assert.Equal(t, 1, win.PendingFrames())
}

func TestUnmountFromFrameHook(t *testing.T) {
	win := host.NewWindow(320, 240)
	var r *Renderer
	r = New(win, render.Software{}, WithFrameHook(func(time.Duration) { r.Unmount() }))
	r.Mount()

	win.Tick(0)
	assert.Zero(t, win.PendingFrames())
	assert.Zero(t, win.Document().Len())
	assert.Zero(t, win.Tick(16*time.Millisecond))
}

func TestResizeFollowsViewport(t *testing.T) {
	win := host.NewWindow(320, 240)
	r := New(win, render.Software{})
	r.Mount()
	defer r.Unmount()

	win.Resize(640, 480)
	w, h := r.Surface().Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestNoGraphicsIsSilent(t *testing.T) {
	win := host.NewWindow(320, 240)
	r := New(win, render.Unavailable{})
	r.Mount()
	assert.Nil(t, r.Surface())
	assert.Zero(t, win.PendingFrames())
	assert.Zero(t, win.Document().Len())
	r.Unmount()

	New(nil, render.Software{}).Mount()
}

func TestDrawsWithThemeColour(t *testing.T) {
	win := host.NewWindow(200, 200)
	win.SetProperty(ColorToken, "#ff0000")
	r := New(win, render.Software{}, WithGlyphs([]Glyph{
		{Anchor: render.Point{X: 50, Y: 100}, Kind: Chart, Opacity: 1},
	}))
	r.Mount()
	defer r.Unmount()

	win.Tick(0)
	img := r.Surface().Image()

	// At t=0 the first bar of the chart spans x 50..56 and rises 20px above y 115.
	c := color.RGBAModel.Convert(img.At(52, 110)).(color.RGBA)
	require.NotZero(t, c.A)
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.R, c.B)
}
