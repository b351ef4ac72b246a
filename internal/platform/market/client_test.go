package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cephalon/ordis/internal/domain"
)

func TestItemsNormalizesNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "zh-hans", r.Header.Get("Language"))

		w.Write([]byte(`{"payload": {"items": [
			{"url_name": "maiming_strike", "item_name": "Maiming Strike"},
			{"url_name": "primed_continuity", "item_name": "Primed Continuity"}
		]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	entries, err := client.Items(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.IndexEntry{
		{Name: "maimingstrike", Slug: "maiming_strike"},
		{Name: "primedcontinuity", Slug: "primed_continuity"},
	}, entries)
}

func TestRivenItemsPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/riven/items", r.URL.Path)
		w.Write([]byte(`{"payload": {"items": [{"url_name": "glaive", "item_name": "战刃"}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	entries, err := client.RivenItems(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "战刃", entries[0].Name)
	assert.Equal(t, "glaive", entries[0].Slug)
}

func TestItemOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/maiming_strike/orders", r.URL.Path)
		assert.Equal(t, "pc", r.Header.Get("Platform"))

		w.Write([]byte(`{"payload": {"orders": [
			{
				"platinum": 40,
				"quantity": 2,
				"order_type": "sell",
				"region": "en",
				"visible": true,
				"mod_rank": 3,
				"user": {"ingame_name": "tenno", "status": "ingame", "reputation": 12}
			},
			{
				"platinum": 60,
				"quantity": 1,
				"order_type": "buy",
				"region": "en",
				"visible": true,
				"user": {"ingame_name": "buyer", "status": "offline", "reputation": 0}
			}
		]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	orders, err := client.ItemOrders(context.Background(), "maiming_strike")
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, 40, orders[0].Platinum)
	assert.Equal(t, domain.OrderSell, orders[0].Type)
	assert.Equal(t, domain.StatusInGame, orders[0].User.Status)
	require.NotNil(t, orders[0].ModRank)
	assert.Equal(t, 3, *orders[0].ModRank)

	// mod_rank is absent on the second order; the pointer stays nil.
	assert.Nil(t, orders[1].ModRank)
	assert.Equal(t, domain.OrderBuy, orders[1].Type)
}

func TestSearchRivenAuctionsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auctions/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "riven", q.Get("type"))
		assert.Equal(t, "glaive", q.Get("weapon_url_name"))
		assert.Equal(t, "price_asc", q.Get("sort_by"))
		assert.Equal(t, "critical_chance,critical_damage", q.Get("positive_stats"))
		assert.Equal(t, "zoom", q.Get("negative_stats"))

		w.Write([]byte(`{"payload": {"auctions": [
			{
				"buyout_price": 150,
				"starting_price": 50,
				"private": false,
				"visible": true,
				"closed": false,
				"is_direct_sell": true,
				"owner": {"ingame_name": "seller", "status": "ingame", "reputation": 99},
				"item": {
					"name": "crita-甲",
					"mastery_level": 14,
					"mod_rank": 8,
					"re_rolls": 21,
					"polarity": "madurai",
					"attributes": [
						{"positive": true, "value": 180.5, "url_name": "critical_chance"},
						{"positive": false, "value": -40, "url_name": "zoom"}
					]
				}
			}
		]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	auctions, err := client.SearchRivenAuctions(context.Background(), "glaive",
		[]string{"critical_chance", "critical_damage"}, "zoom")
	require.NoError(t, err)

	require.Len(t, auctions, 1)
	a := auctions[0]
	assert.Equal(t, 150, a.EffectivePrice())
	assert.Equal(t, "crita-甲", a.Item.Name)
	assert.Equal(t, domain.PolarityMadurai, a.Item.Polarity)
	require.Len(t, a.Item.Attributes, 2)
	assert.Equal(t, 180.5, a.Item.Attributes[0].Value)
	assert.False(t, a.Item.Attributes[1].Positive)
}

func TestSearchRivenAuctionsOmitsEmptyFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasPositive := q["positive_stats"]
		_, hasNegative := q["negative_stats"]
		assert.False(t, hasPositive)
		assert.False(t, hasNegative)

		w.Write([]byte(`{"payload": {"auctions": []}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	auctions, err := client.SearchRivenAuctions(context.Background(), "glaive", nil, "")
	require.NoError(t, err)
	assert.Empty(t, auctions)
}

func TestStatusErrorWrapsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	_, err := client.ItemOrders(context.Background(), "maiming_strike")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "429")
}

func TestDecodeErrorWrapsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payload": `))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "pc", "zh-hans")
	_, err := client.Items(context.Background())

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "decode")
}
