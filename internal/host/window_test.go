package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubElement string

func (s stubElement) ElementID() string { return string(s) }

func TestTickRunsPendingInOrder(t *testing.T) {
	w := NewWindow(100, 100)
	var got []int
	w.RequestAnimationFrame(func(time.Duration) { got = append(got, 1) })
	w.RequestAnimationFrame(func(time.Duration) { got = append(got, 2) })

	assert.Equal(t, 2, w.Tick(16*time.Millisecond))
	assert.Equal(t, []int{1, 2}, got)
	assert.Zero(t, w.PendingFrames())
}

func TestRequestDuringTickDefersToNextTick(t *testing.T) {
	w := NewWindow(100, 100)
	calls := 0
	var loop FrameCallback
	loop = func(time.Duration) {
		calls++
		w.RequestAnimationFrame(loop)
	}
	w.RequestAnimationFrame(loop)

	w.Tick(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, w.PendingFrames())

	w.Tick(time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestCancelAnimationFrame(t *testing.T) {
	w := NewWindow(100, 100)
	ran := false
	id := w.RequestAnimationFrame(func(time.Duration) { ran = true })
	w.CancelAnimationFrame(id)

	assert.Zero(t, w.Tick(0))
	assert.False(t, ran)
}

func TestCancelWithinBatch(t *testing.T) {
	w := NewWindow(100, 100)
	var second FrameID
	ran := false
	w.RequestAnimationFrame(func(time.Duration) { w.CancelAnimationFrame(second) })
	second = w.RequestAnimationFrame(func(time.Duration) { ran = true })

	assert.Equal(t, 1, w.Tick(0))
	assert.False(t, ran)
}

func TestResizeNotifiesListeners(t *testing.T) {
	w := NewWindow(100, 100)
	var sizes [][2]int
	id := w.AddResizeListener(func(width, height int) { sizes = append(sizes, [2]int{width, height}) })

	w.Resize(200, 150)
	w.Resize(200, 150)
	w.Resize(0, 10)
	require.Len(t, sizes, 1)
	assert.Equal(t, [2]int{200, 150}, sizes[0])

	assert.True(t, w.RemoveResizeListener(id))
	assert.False(t, w.RemoveResizeListener(id))
	w.Resize(300, 300)
	assert.Len(t, sizes, 1)
	assert.Zero(t, w.ResizeListeners())
}

func TestDocumentAppendIsIdempotent(t *testing.T) {
	d := &Document{}
	d.AppendChild(stubElement("a"))
	d.AppendChild(stubElement("a"))
	d.AppendChild(stubElement("b"))
	assert.Equal(t, 2, d.Len())

	assert.True(t, d.RemoveChild(stubElement("a")))
	assert.False(t, d.RemoveChild(stubElement("a")))
	assert.Equal(t, []Element{stubElement("b")}, d.Children())
}

func TestProperties(t *testing.T) {
	w := NewWindow(1, 1)
	assert.Empty(t, w.Property("--muted-foreground"))
	w.SetProperty("--muted-foreground", "#64748b")
	assert.Equal(t, "#64748b", w.Property("--muted-foreground"))
}

func TestRunStopsAfterTicks(t *testing.T) {
	w := NewWindow(10, 10)
	frames := 0
	var loop FrameCallback
	loop = func(time.Duration) {
		frames++
		w.RequestAnimationFrame(loop)
	}
	w.RequestAnimationFrame(loop)

	after := 0
	err := Run(context.Background(), w, DriverConfig{Hz: 500, Ticks: 3}, func(uint64) error {
		after++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, after)
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, NewWindow(1, 1), DriverConfig{Hz: 10}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
