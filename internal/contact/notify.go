package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Success Kind = "success"
	Failure Kind = "error"
)

// Notification is a transient toast shown to the visitor.
type Notification struct {
	ID       uuid.UUID
	Kind     Kind
	Message  string
	Duration time.Duration
}

// Milliseconds is the display duration for the page script.
func (n Notification) Milliseconds() int64 {
	return n.Duration.Milliseconds()
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notification",
		"id", n.ID,
		"kind", n.Kind,
		"message", n.Message,
		"duration", n.Duration,
	)
}
