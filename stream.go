package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunil5411/portfolio/internal/ambient"
	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/particles"
	"github.com/Sunil5411/portfolio/internal/render"
	"github.com/Sunil5411/portfolio/internal/skills"
)

const (
	defaultStreamWidth  = 960
	defaultStreamHeight = 600

	// maxFrameTime bounds t on /frame so it stays a finite Duration.
	maxFrameTime = 24 * time.Hour
)

// frameSource is a component that draws itself on a host window once mounted.
type frameSource interface {
	Mount()
	Unmount()
	Surface() *render.Surface
}

// skillSource adapts the visualizer, which is mounted onto a window rather
// than constructed with one.
type skillSource struct {
	vis *skills.Visualizer
	win *host.Window
}

func (s skillSource) Mount()                   { s.vis.Mount(s.win, render.Software{}) }
func (s skillSource) Unmount()                 { s.vis.Unmount() }
func (s skillSource) Surface() *render.Surface { return s.vis.Surface() }

var errUnknownComponent = errors.New("unknown component")

// source builds a fresh component for one request. Every request gets its
// own window, so nothing is shared between connections.
func (s *server) source(c *gin.Context, component string, win *host.Window) (frameSource, error) {
	hook := func(time.Duration) { s.metrics.IncrementFrames(component) }
	logger := s.logger.With("component", component)

	switch component {
	case "ambient":
		return ambient.New(win, render.Software{},
			ambient.WithLogger(logger),
			ambient.WithFrameHook(hook),
		), nil
	case "particles":
		seed := s.seed()
		if v := c.Query("seed"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid seed %q", v)
			}
			seed = n
		}
		return particles.New(win, render.Software{}, rand.New(rand.NewSource(seed)),
			particles.WithLogger(logger),
			particles.WithFrameHook(hook),
		), nil
	case "skills":
		vis := skills.New(s.catalog,
			skills.WithLogger(logger),
			skills.WithFrameHook(hook),
		)
		vis.SetSearch(c.Query("q"))
		vis.SetCategory(parseCategory(c.Query("category")))
		return skillSource{vis: vis, win: win}, nil
	}
	return nil, errUnknownComponent
}

func (s *server) window(c *gin.Context) (*host.Window, error) {
	w, err := queryInt(c, "w", defaultStreamWidth)
	if err != nil {
		return nil, err
	}
	h, err := queryInt(c, "h", defaultStreamHeight)
	if err != nil {
		return nil, err
	}
	w = min(max(w, 1), s.cfg.StreamMaxWidth)
	h = min(max(h, 1), s.cfg.StreamMaxHeight)

	win := host.NewWindow(w, h)
	win.SetProperty(ambient.ColorToken, s.cfg.MutedForeground)
	return win, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

// mount prepares component for c, writing the error response itself when it
// cannot.
func (s *server) mount(c *gin.Context, component string) (frameSource, *host.Window, bool) {
	win, err := s.window(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	src, err := s.source(c, component, win)
	if errors.Is(err, errUnknownComponent) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown component " + component})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	src.Mount()
	if src.Surface() == nil {
		src.Unmount()
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rendering unavailable"})
		return nil, nil, false
	}
	return src, win, true
}

// frame renders a single PNG of a component at time t (seconds).
func (s *server) frame(c *gin.Context) {
	component, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "frames are served as .png"})
		return
	}
	t := 0.0
	if v := c.Query("t"); v != "" {
		var err error
		t, err = strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t > maxFrameTime.Seconds() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid t %q", v)})
			return
		}
	}

	src, win, ok := s.mount(c, component)
	if !ok {
		return
	}
	defer src.Unmount()

	win.Tick(time.Duration(t * float64(time.Second)))

	var buf bytes.Buffer
	if err := src.Surface().EncodePNG(&buf); err != nil {
		s.logger.Error("encode frame", "component", component, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode frame"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// stream serves a component as a multipart/x-mixed-replace sequence of PNG
// frames until the client goes away or the optional frames limit is reached.
func (s *server) stream(c *gin.Context) {
	component := c.Param("component")
	frames, err := queryInt(c, "frames", 0)
	if err != nil || frames < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frames"})
		return
	}

	src, win, ok := s.mount(c, component)
	if !ok {
		return
	}
	defer src.Unmount()

	s.metrics.StreamStarted(component)
	defer s.metrics.StreamEnded(component)

	mw := multipart.NewWriter(c.Writer)
	c.Header("Content-Type", "multipart/x-mixed-replace; boundary="+mw.Boundary())
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)

	surface := src.Surface()
	err = host.Run(c.Request.Context(), win, host.DriverConfig{
		Hz:    s.cfg.FrameRate,
		Ticks: uint64(frames),
	}, func(uint64) error {
		part, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"image/png"}})
		if err != nil {
			return err
		}
		if err := surface.EncodePNG(part); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})

	switch {
	case err == nil:
		if err := mw.Close(); err != nil {
			s.logger.Debug("close stream", "component", component, "error", err)
		}
	case errors.Is(err, context.Canceled):
		s.logger.Debug("stream client gone", "component", component)
	default:
		s.logger.Warn("stream stopped", "component", component, "error", err)
	}
}
