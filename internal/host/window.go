// Package host models the environment the animated components are mounted into:
// a resizable viewport, a document holding rendering surfaces, theme tokens and
// a display-refresh style frame scheduler.
//
// A Window is driven by exactly one goroutine calling Tick. Callbacks scheduled
// with RequestAnimationFrame run strictly in order inside Tick, and a callback
// that requests another frame is deferred to the next Tick.
package host

import (
	"sort"
	"sync"
	"time"
)

// FrameID identifies a pending frame callback.
type FrameID uint64

// ListenerID identifies a registered resize listener.
type ListenerID uint64

// FrameCallback receives the elapsed time since the window was created.
type FrameCallback func(now time.Duration)

// ResizeFunc receives the new viewport size.
type ResizeFunc func(width, height int)

type Window struct {
	mu sync.Mutex

	width  int
	height int

	listeners    map[ListenerID]ResizeFunc
	nextListener ListenerID

	frames    map[FrameID]FrameCallback
	batch     map[FrameID]FrameCallback
	nextFrame FrameID

	props map[string]string
	doc   *Document
}

// NewWindow returns a window with the given viewport size and an empty document.
func NewWindow(width, height int) *Window {
	return &Window{
		width:     width,
		height:    height,
		listeners: make(map[ListenerID]ResizeFunc),
		frames:    make(map[FrameID]FrameCallback),
		props:     make(map[string]string),
		doc:       &Document{},
	}
}

func (w *Window) Document() *Document {
	return w.doc
}

// Size returns the current viewport size.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Resize updates the viewport and notifies listeners in registration order.
// Non-positive sizes are ignored.
func (w *Window) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	w.mu.Lock()
	if w.width == width && w.height == height {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height

	ids := make([]ListenerID, 0, len(w.listeners))
	for id := range w.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]ResizeFunc, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, w.listeners[id])
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}

func (w *Window) AddResizeListener(fn ResizeFunc) ListenerID {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextListener++
	w.listeners[w.nextListener] = fn
	return w.nextListener
}

// RemoveResizeListener reports whether id was registered.
func (w *Window) RemoveResizeListener(id ListenerID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.listeners[id]; !ok {
		return false
	}
	delete(w.listeners, id)
	return true
}

// ResizeListeners returns the number of registered resize listeners.
func (w *Window) ResizeListeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// RequestAnimationFrame schedules cb for the next Tick.
func (w *Window) RequestAnimationFrame(cb FrameCallback) FrameID {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextFrame++
	w.frames[w.nextFrame] = cb
	return w.nextFrame
}

// CancelAnimationFrame drops a pending callback. Cancelling a callback that is
// part of the batch currently being run prevents it from running.
func (w *Window) CancelAnimationFrame(id FrameID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.frames, id)
	delete(w.batch, id)
}

// PendingFrames returns the number of callbacks waiting for the next Tick.
func (w *Window) PendingFrames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.frames)
}

// Tick runs every callback that was pending when it was called and returns how
// many ran.
func (w *Window) Tick(now time.Duration) int {
	w.mu.Lock()
	w.batch = w.frames
	w.frames = make(map[FrameID]FrameCallback)
	ids := make([]FrameID, 0, len(w.batch))
	for id := range w.batch {
		ids = append(ids, id)
	}
	w.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		w.mu.Lock()
		cb, ok := w.batch[id]
		delete(w.batch, id)
		w.mu.Unlock()
		if !ok {
			continue
		}
		cb(now)
		ran++
	}

	w.mu.Lock()
	w.batch = nil
	w.mu.Unlock()
	return ran
}

// SetProperty sets a theme custom property such as "--muted-foreground".
func (w *Window) SetProperty(name, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.props[name] = value
}

// Property returns a theme custom property, or "" when unset.
func (w *Window) Property(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props[name]
}
