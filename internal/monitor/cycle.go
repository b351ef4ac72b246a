package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/cephalon/ordis/internal/render"
)

// CycleWatcher polls the Cetus cycle and alerts shortly before daytime ends,
// when the hunt window opens.
//
// Unlike the mission feed, the phase id is recorded only once its alert
// actually fires: a day phase observed with more than the threshold remaining
// stays unmarked and is re-evaluated every tick until it crosses the
// threshold. That guarantees the alert is never missed by a single early
// observation. The flip side is that the dedup hinges on the triggering
// condition staying true once crossed; see DESIGN.md for the trade-off.
type CycleWatcher struct {
	fetcher   CycleFetcher
	notifier  Broadcaster
	interval  time.Duration
	threshold time.Duration
	logger    *slog.Logger

	lastID string
	now    func() time.Time
}

// NewCycleWatcher creates a CycleWatcher polling on the given interval and
// alerting when a day phase has less than threshold remaining.
func NewCycleWatcher(fetcher CycleFetcher, notifier Broadcaster, interval, threshold time.Duration, logger *slog.Logger) *CycleWatcher {
	return &CycleWatcher{
		fetcher:   fetcher,
		notifier:  notifier,
		interval:  interval,
		threshold: threshold,
		logger:    logger.With(slog.String("component", "cycle_watcher")),
		now:       time.Now,
	}
}

// Poll executes a single tick: fetch, dedup, and alert when the day phase is
// inside the threshold window.
func (w *CycleWatcher) Poll(ctx context.Context) {
	cyc, err := w.fetcher.CetusCycle(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "fetch failed", slog.String("error", err.Error()))
		return
	}

	if cyc.ID == w.lastID {
		return
	}

	remaining := cyc.Remaining(w.now())
	if remaining >= w.threshold || !cyc.IsDay {
		return
	}

	if err := w.notifier.Broadcast(ctx, render.CycleAlert()); err != nil {
		w.logger.ErrorContext(ctx, "broadcast incomplete", slog.String("error", err.Error()))
	}
	w.lastID = cyc.ID
	w.logger.InfoContext(ctx, "day-end alert sent",
		slog.String("id", cyc.ID),
		slog.Duration("remaining", remaining),
	)
}

// Run polls on the configured interval until ctx is cancelled.
func (w *CycleWatcher) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "starting",
		slog.Duration("interval", w.interval),
		slog.Duration("threshold", w.threshold),
	)

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
