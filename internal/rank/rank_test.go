package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cephalon/ordis/internal/domain"
)

func sellOrder(seller string, platinum int) domain.Order {
	return domain.Order{
		Platinum: platinum,
		Quantity: 1,
		Type:     domain.OrderSell,
		Region:   "en",
		Visible:  true,
		User: domain.User{
			IngameName: seller,
			Status:     domain.StatusInGame,
		},
	}
}

func TestOrdersRanksCheapestStable(t *testing.T) {
	// Five sell listings, one of which is filtered out by presence, leaving
	// prices [50 30 30 10]. Expected: [10 30 30 50] with the equal-30 pair
	// keeping its input order.
	offline := sellOrder("offline_guy", 90)
	offline.User.Status = domain.StatusOffline

	orders := []domain.Order{
		sellOrder("alpha", 50),
		sellOrder("bravo", 30),
		sellOrder("charlie", 30),
		offline,
		sellOrder("delta", 10),
	}

	got := Orders(orders, OrderQuery{Region: "en"})

	require.Len(t, got, 4)
	assert.Equal(t, []int{10, 30, 30, 50}, prices(got))
	assert.Equal(t, "bravo", got[1].User.IngameName)
	assert.Equal(t, "charlie", got[2].User.IngameName)
}

func prices(orders []domain.Order) []int {
	out := make([]int, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Platinum)
	}
	return out
}

func TestOrdersFilters(t *testing.T) {
	online := sellOrder("online_guy", 5)
	online.User.Status = domain.StatusOnline

	buy := sellOrder("buyer", 5)
	buy.Type = domain.OrderBuy

	foreign := sellOrder("foreign", 5)
	foreign.Region = "ru"

	hidden := sellOrder("hidden", 5)
	hidden.Visible = false

	keep := sellOrder("keeper", 10)

	got := Orders([]domain.Order{online, buy, foreign, hidden, keep}, OrderQuery{Region: "en"})

	require.Len(t, got, 1)
	assert.Equal(t, "keeper", got[0].User.IngameName)
}

func TestOrdersModRankConstraint(t *testing.T) {
	rank0, rank10 := 0, 10

	maxed := sellOrder("maxed", 100)
	maxed.ModRank = &rank10

	unranked := sellOrder("unranked", 20)
	unranked.ModRank = &rank0

	noRank := sellOrder("norank", 50)

	orders := []domain.Order{maxed, unranked, noRank}

	got := Orders(orders, OrderQuery{Region: "en", ModRank: &rank10})
	require.Len(t, got, 2)
	// Listings without a rank always pass; the rank-0 listing is dropped.
	assert.Equal(t, "norank", got[0].User.IngameName)
	assert.Equal(t, "maxed", got[1].User.IngameName)

	// No constraint: everything passes.
	got = Orders(orders, OrderQuery{Region: "en"})
	assert.Len(t, got, 3)
}

func TestOrdersTruncatesToTopN(t *testing.T) {
	var orders []domain.Order
	for i := 10; i > 0; i-- {
		orders = append(orders, sellOrder("s", i))
	}
	got := Orders(orders, OrderQuery{Region: "en"})
	assert.Equal(t, []int{1, 2, 3, 4}, prices(got))
}

func TestOrdersPure(t *testing.T) {
	orders := []domain.Order{
		sellOrder("a", 30),
		sellOrder("b", 10),
		sellOrder("c", 30),
	}
	first := Orders(orders, OrderQuery{Region: "en"})
	second := Orders(orders, OrderQuery{Region: "en"})
	assert.Equal(t, first, second)
}

func auction(seller string, starting int, buyout *int) domain.Auction {
	return domain.Auction{
		BuyoutPrice:   buyout,
		StartingPrice: starting,
		Visible:       true,
		Owner: domain.User{
			IngameName: seller,
			Status:     domain.StatusInGame,
		},
	}
}

func intp(v int) *int { return &v }

func TestAuctionsRanksByEffectivePrice(t *testing.T) {
	auctions := []domain.Auction{
		auction("a", 200, nil),        // effective 200
		auction("b", 50, intp(120)),   // effective 120
		auction("c", 90, nil),         // effective 90
		auction("d", 1000, intp(300)), // effective 300, cut by top-N
	}

	got := Auctions(auctions)

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Owner.IngameName)
	assert.Equal(t, "b", got[1].Owner.IngameName)
	assert.Equal(t, "a", got[2].Owner.IngameName)
}

func TestAuctionsFilters(t *testing.T) {
	private := auction("private", 10, nil)
	private.Private = true

	hidden := auction("hidden", 10, nil)
	hidden.Visible = false

	closed := auction("closed", 10, nil)
	closed.Closed = true

	away := auction("away", 10, nil)
	away.Owner.Status = domain.StatusOffline

	keep := auction("keeper", 999, nil)

	got := Auctions([]domain.Auction{private, hidden, closed, away, keep})

	require.Len(t, got, 1)
	assert.Equal(t, "keeper", got[0].Owner.IngameName)
}

func TestAuctionsStableOnTies(t *testing.T) {
	auctions := []domain.Auction{
		auction("first", 100, nil),
		auction("second", 100, nil),
		auction("third", 100, nil),
	}
	got := Auctions(auctions)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Owner.IngameName)
	assert.Equal(t, "second", got[1].Owner.IngameName)
	assert.Equal(t, "third", got[2].Owner.IngameName)
}
