package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunil5411/portfolio/internal/metrics"
)

type recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recorder) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

// manualClock hands out a channel that fires only when the test says so.
type manualClock struct {
	fire   chan time.Time
	delays chan time.Duration
}

func newManualClock() *manualClock {
	return &manualClock{fire: make(chan time.Time), delays: make(chan time.Duration, 1)}
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	c.delays <- d
	return c.fire
}

func filled() *Form {
	return &Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Dashboard",
		Message: "Can we talk about a Power BI report?",
	}
}

type result struct {
	n   Notification
	err error
}

func TestSubmitPendingResetNotify(t *testing.T) {
	clock := newManualClock()
	rec := &recorder{}
	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(WithClock(clock.After), WithNotifier(rec), WithMetrics(m))

	form := filled()
	done := make(chan result, 1)
	go func() {
		n, err := svc.Submit(context.Background(), form)
		done <- result{n, err}
	}()

	assert.Equal(t, DefaultDelay, <-clock.delays)
	assert.True(t, svc.Pending())
	assert.Empty(t, rec.all())

	clock.fire <- time.Time{}
	res := <-done

	require.NoError(t, res.err)
	assert.False(t, svc.Pending())
	assert.True(t, form.Empty())

	sent := rec.all()
	require.Len(t, sent, 1)
	assert.Equal(t, res.n, sent[0])
	assert.Equal(t, Success, sent[0].Kind)
	assert.Equal(t, SuccessMessage, sent[0].Message)
	assert.Equal(t, int64(5000), sent[0].Milliseconds())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions))
}

func TestSubmitConfiguredDelay(t *testing.T) {
	svc := NewService(WithDelay(time.Millisecond), WithNotifier(&recorder{}))
	n, err := svc.Submit(context.Background(), filled())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, n.ID)
}

func TestSubmitIncompleteForm(t *testing.T) {
	rec := &recorder{}
	svc := NewService(WithDelay(0), WithNotifier(rec))

	form := filled()
	form.Subject = "   "
	_, err := svc.Submit(context.Background(), form)
	require.ErrorIs(t, err, ErrIncompleteForm)
	assert.ErrorContains(t, err, "subject")
	assert.Equal(t, "Ada", form.Name)
	assert.Empty(t, rec.all())
	assert.False(t, svc.Pending())
}

func TestSubmitCancelled(t *testing.T) {
	clock := newManualClock()
	rec := &recorder{}
	svc := NewService(WithClock(clock.After), WithNotifier(rec))

	ctx, cancel := context.WithCancel(context.Background())
	form := filled()
	done := make(chan result, 1)
	go func() {
		n, err := svc.Submit(ctx, form)
		done <- result{n, err}
	}()

	<-clock.delays
	cancel()
	res := <-done

	assert.True(t, errors.Is(res.err, context.Canceled))
	assert.False(t, form.Empty())
	assert.Empty(t, rec.all())
	assert.False(t, svc.Pending())
}

func TestConcurrentSubmissionsNotifyOnceEach(t *testing.T) {
	rec := &recorder{}
	svc := NewService(WithDelay(time.Millisecond), WithNotifier(rec))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), filled())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, rec.all(), 5)
}
