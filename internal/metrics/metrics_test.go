package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementPageView("/")
	m.IncrementPageView("/")
	m.IncrementPageView("/skills")
	m.IncrementContactSubmissions()
	m.IncrementFrames("ambient")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/skills")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesRendered.WithLabelValues("ambient")))
}

func TestStreamsGauge(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.StreamStarted("particles")
	m.StreamStarted("particles")
	m.StreamEnded("particles")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveStreams.WithLabelValues("particles")))
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementPageView("/")
		m.IncrementContactSubmissions()
		m.IncrementFrames("skills")
		m.StreamStarted("ambient")
		m.StreamEnded("ambient")
	})
}
