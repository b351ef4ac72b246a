package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cephalon/ordis/internal/monitor"
	"github.com/cephalon/ordis/internal/server"
	"github.com/cephalon/ordis/internal/server/handler"
)

// MonitorMode runs the two polling watchers until the context is cancelled.
func (a *App) MonitorMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting monitor mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startWatchers(ctx, g, deps)
	return g.Wait()
}

// ServerMode runs the HTTP query API until the context is cancelled.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startServer(ctx, g, deps)
	return g.Wait()
}

// FullMode runs the watchers and the HTTP API together.
func (a *App) FullMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting full mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startWatchers(ctx, g, deps)
	if a.cfg.Server.Enabled {
		a.startServer(ctx, g, deps)
	}
	return g.Wait()
}

// startWatchers launches the mission and cycle watchers on the errgroup. The
// watchers only ever return on context cancellation, which is mapped to a
// clean nil so shutdown is not reported as an error.
func (a *App) startWatchers(ctx context.Context, g *errgroup.Group, deps *Dependencies) {
	interval := a.cfg.Monitor.PollInterval.Duration
	threshold := a.cfg.Monitor.CycleThreshold.Duration

	if deps.MissionNotifier.Targets() == 0 {
		a.logger.Warn("mission feed has no notification targets configured")
	}
	if deps.CycleNotifier.Targets() == 0 {
		a.logger.Warn("cycle feed has no notification targets configured")
	}

	missionWatcher := monitor.NewMissionWatcher(deps.World, deps.MissionNotifier, interval, a.logger)
	g.Go(func() error {
		err := missionWatcher.Run(ctx)
		if ctx.Err() != nil {
			return nil // clean shutdown
		}
		return fmt.Errorf("mission watcher: %w", err)
	})

	cycleWatcher := monitor.NewCycleWatcher(deps.World, deps.CycleNotifier, interval, threshold, a.logger)
	g.Go(func() error {
		err := cycleWatcher.Run(ctx)
		if ctx.Err() != nil {
			return nil // clean shutdown
		}
		return fmt.Errorf("cycle watcher: %w", err)
	})
}

// startServer launches the HTTP API on the errgroup, plus a goroutine that
// shuts the server down when the context is cancelled.
func (a *App) startServer(ctx context.Context, g *errgroup.Group, deps *Dependencies) {
	srv := server.NewServer(
		server.Config{Port: a.cfg.Server.Port},
		server.Handlers{
			Health: handler.NewHealthHandler(a.logger),
			State:  handler.NewStateHandler(deps.Query, a.logger),
			Market: handler.NewMarketHandler(deps.Query, a.logger),
		},
		a.logger,
	)

	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		}
		return nil
	})
}
