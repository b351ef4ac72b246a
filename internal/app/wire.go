package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cephalon/ordis/internal/config"
	"github.com/cephalon/ordis/internal/domain"
	redisindex "github.com/cephalon/ordis/internal/index/redis"
	"github.com/cephalon/ordis/internal/notify"
	"github.com/cephalon/ordis/internal/platform/market"
	"github.com/cephalon/ordis/internal/platform/worldstate"
	"github.com/cephalon/ordis/internal/query"
)

// Dependencies bundles everything the operating modes need. It is constructed
// by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	World  *worldstate.Client
	Market *market.Client

	ItemIndex  domain.ItemIndex
	RivenIndex domain.ItemIndex

	MissionNotifier *notify.Notifier
	CycleNotifier   *notify.Notifier

	Query *query.Service
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that should
// be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	logger := slog.Default()

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Upstream API clients ---
	deps.World = worldstate.NewClient(cfg.Worldstate.Host, cfg.Worldstate.Language)
	deps.Market = market.NewClient(cfg.Market.Host, cfg.Market.Platform, cfg.Market.Language)

	// --- Redis name index ---
	redisClient, err := redisindex.New(ctx, redisindex.ClientConfig{
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		PoolSize:   cfg.Redis.PoolSize,
		MaxRetries: cfg.Redis.MaxRetries,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("wire: redis: %w", err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })

	deps.ItemIndex = redisindex.NewItemIndex(redisClient, "item")
	deps.RivenIndex = redisindex.NewItemIndex(redisClient, "riven")

	// --- Notifiers, one target list per feed ---
	deps.MissionNotifier = notify.NewNotifier(buildSenders(
		cfg.Notify.TelegramToken,
		cfg.Notify.MissionTelegramChats,
		cfg.Notify.MissionDiscordWebhooks,
	), logger)
	deps.CycleNotifier = notify.NewNotifier(buildSenders(
		cfg.Notify.TelegramToken,
		cfg.Notify.CycleTelegramChats,
		cfg.Notify.CycleDiscordWebhooks,
	), logger)

	// --- Query service ---
	deps.Query = query.NewService(
		deps.Market,
		deps.World,
		deps.ItemIndex,
		deps.RivenIndex,
		cfg.Market.Region,
		logger,
	)

	return deps, cleanup, nil
}

// buildSenders turns one feed's configured targets into notify senders.
func buildSenders(telegramToken string, telegramChats, discordWebhooks []string) []notify.Sender {
	var senders []notify.Sender
	if telegramToken != "" {
		for _, chat := range telegramChats {
			senders = append(senders, notify.NewTelegramSender(telegramToken, chat))
		}
	}
	for i, webhook := range discordWebhooks {
		senders = append(senders, notify.NewDiscordSender(webhook, "webhook-"+strconv.Itoa(i)))
	}
	return senders
}
