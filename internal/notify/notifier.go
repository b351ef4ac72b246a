// Package notify delivers alert messages to a configured set of chat targets.
// Each feed owns its own Notifier; a message is rendered once and dispatched
// to every target independently, so one broken webhook never silences the
// rest or kills the watcher that triggered the alert.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Sender is one delivery target.
type Sender interface {
	// Send delivers the rendered message body to this target.
	Send(ctx context.Context, message string) error
	// Name returns a log-friendly identifier for the target,
	// e.g. "telegram:123456".
	Name() string
}

// Notifier fans a message out to all of its senders.
type Notifier struct {
	senders []Sender
	logger  *slog.Logger
}

// NewNotifier creates a Notifier over the given senders.
func NewNotifier(senders []Sender, logger *slog.Logger) *Notifier {
	return &Notifier{
		senders: senders,
		logger:  logger.With(slog.String("component", "notifier")),
	}
}

// Targets returns how many senders are configured.
func (n *Notifier) Targets() int {
	return len(n.senders)
}

// Broadcast sends the message to every sender. Failures are logged per target
// and collected into a combined error; delivery to the remaining targets
// always proceeds.
func (n *Notifier) Broadcast(ctx context.Context, message string) error {
	if len(n.senders) == 0 {
		return nil
	}

	var errs []string
	for _, s := range n.senders {
		if err := s.Send(ctx, message); err != nil {
			n.logger.ErrorContext(ctx, "delivery failed",
				slog.String("target", s.Name()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Sprintf("%s: %v", s.Name(), err))
			continue
		}
		n.logger.DebugContext(ctx, "delivered",
			slog.String("target", s.Name()),
		)
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d target(s) failed: %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}
