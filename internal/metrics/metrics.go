package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the site's Prometheus metrics.
type Metrics struct {
	// Page views by route, visitors with Do Not Track excluded
	PageViews *prometheus.CounterVec

	ContactSubmissions prometheus.Counter

	// Frames drawn by component: "ambient", "particles", "skills"
	FramesRendered *prometheus.CounterVec

	ActiveStreams *prometheus.GaugeVec
}

// New creates the metrics and registers them with reg. A nil reg registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		PageViews: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Total page views by route",
		}, []string{"path"}),

		ContactSubmissions: f.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Total contact form submissions accepted",
		}),

		FramesRendered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_frames_rendered_total",
			Help: "Total animation frames rendered by component",
		}, []string{"component"}),

		ActiveStreams: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "portfolio_active_streams",
			Help: "Frame streams currently being served by component",
		}, []string{"component"}),
	}
}

// IncrementPageView records a page view for path.
func (m *Metrics) IncrementPageView(path string) {
	if m != nil {
		m.PageViews.WithLabelValues(path).Inc()
	}
}

// IncrementContactSubmissions records one accepted contact submission.
func (m *Metrics) IncrementContactSubmissions() {
	if m != nil {
		m.ContactSubmissions.Inc()
	}
}

// IncrementFrames records one rendered frame for component.
func (m *Metrics) IncrementFrames(component string) {
	if m != nil {
		m.FramesRendered.WithLabelValues(component).Inc()
	}
}

// StreamStarted and StreamEnded track open frame streams.
func (m *Metrics) StreamStarted(component string) {
	if m != nil {
		m.ActiveStreams.WithLabelValues(component).Inc()
	}
}

func (m *Metrics) StreamEnded(component string) {
	if m != nil {
		m.ActiveStreams.WithLabelValues(component).Dec()
	}
}
