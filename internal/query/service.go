// Package query implements the on-demand lookups behind the chat commands:
// live state summaries, item order searches, riven auction searches, and
// catalog syncs into the local name index.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cephalon/ordis/internal/domain"
	"github.com/cephalon/ordis/internal/rank"
	"github.com/cephalon/ordis/internal/render"
)

// Marketplace is the slice of the marketplace API the service needs.
type Marketplace interface {
	Items(ctx context.Context) ([]domain.IndexEntry, error)
	RivenItems(ctx context.Context) ([]domain.IndexEntry, error)
	ItemOrders(ctx context.Context, slug string) ([]domain.Order, error)
	SearchRivenAuctions(ctx context.Context, slug string, positives []string, negative string) ([]domain.Auction, error)
}

// Worldstate is the slice of the game-state API the service needs.
type Worldstate interface {
	Arbitration(ctx context.Context) (domain.Arbitration, error)
	CetusCycle(ctx context.Context) (domain.CetusCycle, error)
}

// Service answers on-demand queries. It holds no mutable state; concurrent
// queries need no coordination because listings are never cached.
type Service struct {
	market     Marketplace
	world      Worldstate
	itemIndex  domain.ItemIndex
	rivenIndex domain.ItemIndex
	region     string
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a query Service. region is the marketplace region orders
// are restricted to.
func NewService(market Marketplace, world Worldstate, itemIndex, rivenIndex domain.ItemIndex, region string, logger *slog.Logger) *Service {
	return &Service{
		market:     market,
		world:      world,
		itemIndex:  itemIndex,
		rivenIndex: rivenIndex,
		region:     region,
		logger:     logger.With(slog.String("component", "query")),
		now:        time.Now,
	}
}

// CurrentArbitration fetches and renders the live arbitration summary.
func (s *Service) CurrentArbitration(ctx context.Context) (string, error) {
	arb, err := s.world.Arbitration(ctx)
	if err != nil {
		return "", err
	}
	return render.Arbitration(arb, s.now()), nil
}

// CurrentCycle fetches and renders the day/night summary.
func (s *Service) CurrentCycle(ctx context.Context) (string, error) {
	cyc, err := s.world.CetusCycle(ctx)
	if err != nil {
		return "", err
	}
	return render.Cycle(cyc, s.now()), nil
}

// ItemOrders resolves an item name through the local index, fetches its order
// book, and renders the cheapest in-game sell listings. modRank, when set,
// restricts ranked listings to that rank. A name that was never synced returns
// domain.ErrNotFound.
func (s *Service) ItemOrders(ctx context.Context, name string, modRank *int) (string, error) {
	normalized := domain.NormalizeName(name)

	slug, err := s.itemIndex.Get(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("item %q: %w", normalized, domain.ErrNotFound)
		}
		return "", fmt.Errorf("query: resolve item %q: %w", normalized, err)
	}

	orders, err := s.market.ItemOrders(ctx, slug)
	if err != nil {
		return "", err
	}

	ranked := rank.Orders(orders, rank.OrderQuery{
		Region:  s.region,
		ModRank: modRank,
	})
	return render.Orders(ranked), nil
}

// RivenResult is the outcome of a riven auction query. Unresolved lists the
// attribute names that were not in the dictionary; the query still ran with
// the attributes that did resolve.
type RivenResult struct {
	Text       string
	Unresolved []string
}

// RivenAuctions resolves a weapon name through the riven index, resolves the
// caller's attribute constraints through the static dictionary, searches
// auctions upstream (attribute filtering is delegated to the search query),
// and renders the cheapest open listings.
func (s *Service) RivenAuctions(ctx context.Context, name string, positives []string, negative string) (RivenResult, error) {
	normalized := domain.NormalizeName(name)

	posIDs, unresolved := rank.ResolveAttributes(positives)

	negID := ""
	if negative != "" {
		if id, ok := rank.ResolveAttribute(negative); ok {
			negID = id
		} else {
			unresolved = append(unresolved, negative)
		}
	}

	slug, err := s.rivenIndex.Get(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return RivenResult{Unresolved: unresolved},
				fmt.Errorf("riven %q: %w", normalized, domain.ErrNotFound)
		}
		return RivenResult{Unresolved: unresolved},
			fmt.Errorf("query: resolve riven %q: %w", normalized, err)
	}

	auctions, err := s.market.SearchRivenAuctions(ctx, slug, posIDs, negID)
	if err != nil {
		return RivenResult{Unresolved: unresolved}, err
	}

	ranked := rank.Auctions(auctions)
	return RivenResult{
		Text:       render.Auctions(name, ranked),
		Unresolved: unresolved,
	}, nil
}

// SyncResult reports a catalog sync: how many entries were written and how
// many the index now holds.
type SyncResult struct {
	Written int
	Total   int64
}

// SyncItems refreshes the item index from the marketplace catalog.
func (s *Service) SyncItems(ctx context.Context) (SyncResult, error) {
	return s.sync(ctx, s.market.Items, s.itemIndex)
}

// SyncRivens refreshes the riven index from the marketplace riven catalog.
func (s *Service) SyncRivens(ctx context.Context) (SyncResult, error) {
	return s.sync(ctx, s.market.RivenItems, s.rivenIndex)
}

func (s *Service) sync(ctx context.Context, fetch func(context.Context) ([]domain.IndexEntry, error), index domain.ItemIndex) (SyncResult, error) {
	entries, err := fetch(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	if err := index.Put(ctx, entries); err != nil {
		return SyncResult{}, err
	}

	total, err := index.Count(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	s.logger.InfoContext(ctx, "catalog synced",
		slog.Int("written", len(entries)),
		slog.Int64("total", total),
	)
	return SyncResult{Written: len(entries), Total: total}, nil
}
