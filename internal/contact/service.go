package contact

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sunil5411/portfolio/internal/metrics"
)

const (
	DefaultDelay   = 2 * time.Second
	SuccessMessage = "Message sent successfully! I'll respond within 10 minutes."
	ToastDuration  = 5 * time.Second
)

// Service accepts contact submissions. Nothing is transmitted: a submission
// waits a fixed delay and then always succeeds.
type Service struct {
	delay    time.Duration
	after    func(time.Duration) <-chan time.Time
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer

	pending atomic.Int32
}

type Option func(*Service)

// WithDelay sets how long a submission stays pending.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithClock replaces time.After, mainly for tests.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Service) { s.after = after }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		delay:  DefaultDelay,
		after:  time.After,
		logger: slog.Default(),
		tracer: otel.Tracer("github.com/Sunil5411/portfolio/internal/contact"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}
	return s
}

// Pending reports whether any submission is waiting out its delay.
func (s *Service) Pending() bool {
	return s.pending.Load() > 0
}

// Submit simulates sending f. After the delay the form is reset and exactly
// one success notification is emitted and returned. Only an incomplete form or
// a cancelled ctx ends it early, and then f is left untouched.
func (s *Service) Submit(ctx context.Context, f *Form) (Notification, error) {
	ctx, span := s.tracer.Start(ctx, "contact.Submit",
		trace.WithAttributes(attribute.String("contact.subject", f.Subject)))
	defer span.End()

	if err := f.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Notification{}, err
	}

	s.pending.Add(1)
	defer s.pending.Add(-1)

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		span.SetStatus(codes.Error, "cancelled")
		return Notification{}, ctx.Err()
	case <-s.after(s.delay):
	}

	s.logger.Info("contact message received",
		"name", f.Name,
		"email", f.Email,
		"subject", f.Subject,
	)
	f.Reset()

	n := Notification{
		ID:       uuid.New(),
		Kind:     Success,
		Message:  SuccessMessage,
		Duration: ToastDuration,
	}
	s.notifier.Notify(ctx, n)
	s.metrics.IncrementContactSubmissions()
	span.SetAttributes(attribute.String("contact.notification_id", n.ID.String()))
	return n, nil
}
