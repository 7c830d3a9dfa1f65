// Package render provides the drawing surfaces the animated components paint on.
// Surfaces are software rasterised with gg and can be attached to a host document.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// ErrNoGraphics is returned by providers that cannot create drawing surfaces.
var ErrNoGraphics = errors.New("render: graphics capability unavailable")

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Provider creates drawing surfaces.
type Provider interface {
	NewSurface(width, height int) (*Surface, error)
}

// Software creates gg-backed surfaces.
type Software struct{}

func (Software) NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new surface %dx%d: invalid size", width, height)
	}
	return &Surface{
		id: uuid.NewString(),
		dc: gg.NewContext(width, height),
	}, nil
}

// Unavailable models a host without drawing capability.
type Unavailable struct{}

func (Unavailable) NewSurface(int, int) (*Surface, error) {
	return nil, ErrNoGraphics
}

// Surface is a transparent RGBA drawing target. Draw, Image and EncodePNG
// serialise on the surface, so a frame is never read half drawn.
type Surface struct {
	mu       sync.Mutex
	id       string
	dc       *gg.Context
	released bool
}

func (s *Surface) ElementID() string {
	return s.id
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	return s.dc.Resize(width, height)
}

// Released reports whether Release has been called.
func (s *Surface) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Release frees the drawing context. Further drawing is a no-op.
func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	_ = s.dc.Close()
}

// Draw runs fn with exclusive access to the canvas. It does nothing once the
// surface has been released.
func (s *Surface) Draw(fn func(c *Canvas)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	fn(&Canvas{dc: s.dc})
}

// Image returns a copy of the pixels, or an empty image once released.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrNoGraphics
	}
	return s.dc.EncodePNG(w)
}
