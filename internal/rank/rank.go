// Package rank filters and orders marketplace listings. Both pipelines share
// one shape: drop everything a buyer cannot act on, stable-sort the survivors
// by price ascending, and keep only the cheapest few. Stability matters: ties
// keep their fetch order so identical upstream payloads rank identically.
package rank

import (
	"cmp"
	"slices"

	"github.com/cephalon/ordis/internal/domain"
)

const (
	// TopOrders is how many order listings a query renders.
	TopOrders = 4
	// TopAuctions is how many riven auctions a query renders.
	TopAuctions = 3
)

// OrderQuery holds the caller-side constraints for the order pipeline.
type OrderQuery struct {
	// Region restricts listings to one marketplace region.
	Region string
	// ModRank, when set, requires listings that carry a rank to match it.
	// Listings without a rank always pass.
	ModRank *int
}

// Orders returns the cheapest sell listings from sellers who are actually in
// game, visible in the given region, truncated to TopOrders.
func Orders(orders []domain.Order, q OrderQuery) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.User.Status != domain.StatusInGame {
			continue
		}
		if o.Type != domain.OrderSell {
			continue
		}
		if o.Region != q.Region {
			continue
		}
		if !o.Visible {
			continue
		}
		if q.ModRank != nil && o.ModRank != nil && *q.ModRank != *o.ModRank {
			continue
		}
		out = append(out, o)
	}

	slices.SortStableFunc(out, func(a, b domain.Order) int {
		return cmp.Compare(a.Platinum, b.Platinum)
	})

	if len(out) > TopOrders {
		out = out[:TopOrders]
	}
	return out
}

// Auctions returns the cheapest open public riven auctions from sellers who
// are in game, ranked by effective price (buyout when set, else starting),
// truncated to TopAuctions.
func Auctions(auctions []domain.Auction) []domain.Auction {
	out := make([]domain.Auction, 0, len(auctions))
	for _, a := range auctions {
		if a.Owner.Status != domain.StatusInGame {
			continue
		}
		if a.Private {
			continue
		}
		if !a.Visible {
			continue
		}
		if a.Closed {
			continue
		}
		out = append(out, a)
	}

	slices.SortStableFunc(out, func(a, b domain.Auction) int {
		return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
	})

	if len(out) > TopAuctions {
		out = out[:TopAuctions]
	}
	return out
}
