// Package monitor runs the long-lived polling watchers. Each watcher owns its
// own last-seen rotation id, so the two feeds never share mutable state and
// need no locking. Fetch errors skip the tick; the loops only stop when the
// context is cancelled.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/cephalon/ordis/internal/classify"
	"github.com/cephalon/ordis/internal/domain"
	"github.com/cephalon/ordis/internal/render"
)

// ArbitrationFetcher retrieves the current arbitration rotation.
type ArbitrationFetcher interface {
	Arbitration(ctx context.Context) (domain.Arbitration, error)
}

// CycleFetcher retrieves the current Cetus cycle phase.
type CycleFetcher interface {
	CetusCycle(ctx context.Context) (domain.CetusCycle, error)
}

// Broadcaster fans a rendered alert out to the feed's targets.
type Broadcaster interface {
	Broadcast(ctx context.Context, message string) error
}

// MissionWatcher polls the arbitration feed and alerts on top-tier rotations.
//
// Dedup protocol: the very first rotation seen after startup is adopted
// silently so a restart never re-announces the rotation already in progress.
// After that, a rotation id is adopted only when its alert fires, which is
// harmless because classification is deterministic per id.
type MissionWatcher struct {
	fetcher  ArbitrationFetcher
	notifier Broadcaster
	interval time.Duration
	logger   *slog.Logger

	lastID string
	now    func() time.Time
}

// NewMissionWatcher creates a MissionWatcher polling on the given interval.
func NewMissionWatcher(fetcher ArbitrationFetcher, notifier Broadcaster, interval time.Duration, logger *slog.Logger) *MissionWatcher {
	return &MissionWatcher{
		fetcher:  fetcher,
		notifier: notifier,
		interval: interval,
		logger:   logger.With(slog.String("component", "mission_watcher")),
		now:      time.Now,
	}
}

// Poll executes a single tick: fetch, dedup, classify, and alert if the
// rotation is worth it.
func (w *MissionWatcher) Poll(ctx context.Context) {
	arb, err := w.fetcher.Arbitration(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "fetch failed", slog.String("error", err.Error()))
		return
	}

	if arb.ID == w.lastID {
		return
	}

	if w.lastID == "" {
		// First observation after startup: seed without alerting.
		w.lastID = arb.ID
		w.logger.InfoContext(ctx, "seeded rotation", slog.String("id", arb.ID))
		return
	}

	tier := classify.Classify(arb)
	w.logger.DebugContext(ctx, "new rotation",
		slog.String("id", arb.ID),
		slog.String("node", arb.Node),
		slog.String("type", arb.TypeKey),
		slog.Int("tier", int(tier)),
	)
	if tier != classify.TierTop {
		return
	}

	msg := render.MissionAlert(arb, w.now())
	if err := w.notifier.Broadcast(ctx, msg); err != nil {
		w.logger.ErrorContext(ctx, "broadcast incomplete", slog.String("error", err.Error()))
	}
	w.lastID = arb.ID
}

// Run polls on the configured interval until ctx is cancelled.
func (w *MissionWatcher) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "starting", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}
