package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftwareSurfaceLifecycle(t *testing.T) {
	s, err := Software{}.NewSurface(64, 32)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ElementID())

	w, h := s.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)

	require.NoError(t, s.Resize(128, 16))
	w, h = s.Size()
	assert.Equal(t, 128, w)
	assert.Equal(t, 16, h)

	s.Draw(func(c *Canvas) {
		c.Clear()
		c.SetColor(gg.Hex("#ff0000"), 1)
		c.FillRect(0, 0, 8, 8)
	})

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	s.Release()
	assert.True(t, s.Released())
	drew := false
	s.Draw(func(*Canvas) { drew = true })
	assert.False(t, drew)
	assert.ErrorIs(t, s.EncodePNG(&buf), ErrNoGraphics)
}

func TestSurfacesHaveDistinctIDs(t *testing.T) {
	a, err := Software{}.NewSurface(1, 1)
	require.NoError(t, err)
	b, err := Software{}.NewSurface(1, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.ElementID(), b.ElementID())
}

func TestNewSurfaceRejectsBadSize(t *testing.T) {
	_, err := Software{}.NewSurface(0, 10)
	assert.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.NewSurface(10, 10)
	assert.ErrorIs(t, err, ErrNoGraphics)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want gg.RGBA
	}{
		{"#ffffff", true, gg.RGB(1, 1, 1)},
		{"#000", true, gg.RGB(0, 0, 0)},
		{"rgb(255, 0, 0)", true, gg.RGB(1, 0, 0)},
		{"0 0% 100%", true, gg.HSL(0, 0, 1)},
		{"hsl(215.4 16.3% 46.9%)", true, gg.HSL(215.4, 0.163, 0.469)},
		{"", false, gg.RGBA{}},
		{"#zzzzzz", false, gg.RGBA{}},
		{"banana", false, gg.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want.R, got.R, 1e-6)
				assert.InDelta(t, tt.want.G, got.G, 1e-6)
				assert.InDelta(t, tt.want.B, got.B, 1e-6)
			}
		})
	}
}
