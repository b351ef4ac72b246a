// Package market is the REST client for the marketplace API: item and riven
// catalogs, order books, and riven auction search.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cephalon/ordis/internal/domain"
)

const requestTimeout = 5 * time.Second

// Client is the marketplace API client.
type Client struct {
	baseURL    string
	platform   string // e.g. "pc", sent on order/auction requests
	language   string // e.g. "zh-hans", sent on catalog requests
	httpClient *http.Client
}

// NewClient creates a marketplace client.
//
// baseURL is the API root, e.g. "https://api.warframe.market/v1".
func NewClient(baseURL, platform, language string) *Client {
	return &Client{
		baseURL:  baseURL,
		platform: platform,
		language: language,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Items fetches the full tradable item catalog as normalized index entries.
func (c *Client) Items(ctx context.Context) ([]domain.IndexEntry, error) {
	return c.fetchCatalog(ctx, "/items")
}

// RivenItems fetches the riven weapon catalog as normalized index entries.
func (c *Client) RivenItems(ctx context.Context) ([]domain.IndexEntry, error) {
	return c.fetchCatalog(ctx, "/riven/items")
}

func (c *Client) fetchCatalog(ctx context.Context, path string) ([]domain.IndexEntry, error) {
	var env itemsEnvelope
	headers := map[string]string{"Language": c.language}
	if err := c.doGet(ctx, path, headers, &env); err != nil {
		return nil, err
	}

	entries := make([]domain.IndexEntry, 0, len(env.Payload.Items))
	for _, item := range env.Payload.Items {
		entries = append(entries, domain.IndexEntry{
			Name: domain.NormalizeName(item.ItemName),
			Slug: item.URLName,
		})
	}
	return entries, nil
}

// ItemOrders fetches the current order book for an item slug.
func (c *Client) ItemOrders(ctx context.Context, slug string) ([]domain.Order, error) {
	path := fmt.Sprintf("/items/%s/orders", url.PathEscape(slug))

	var env ordersEnvelope
	headers := map[string]string{"Platform": c.platform}
	if err := c.doGet(ctx, path, headers, &env); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(env.Payload.Orders))
	for _, o := range env.Payload.Orders {
		orders = append(orders, o.toDomain())
	}
	return orders, nil
}

// SearchRivenAuctions fetches riven auctions for a weapon slug, sorted by
// price on the server side. positives and negative carry canonical attribute
// ids; attribute filtering is delegated to the upstream query.
func (c *Client) SearchRivenAuctions(ctx context.Context, slug string, positives []string, negative string) ([]domain.Auction, error) {
	params := url.Values{}
	params.Set("type", "riven")
	params.Set("weapon_url_name", slug)
	params.Set("sort_by", "price_asc")
	if len(positives) > 0 {
		params.Set("positive_stats", strings.Join(positives, ","))
	}
	if negative != "" {
		params.Set("negative_stats", negative)
	}

	path := "/auctions/search?" + params.Encode()

	var env auctionsEnvelope
	headers := map[string]string{"Platform": c.platform}
	if err := c.doGet(ctx, path, headers, &env); err != nil {
		return nil, err
	}

	auctions := make([]domain.Auction, 0, len(env.Payload.Auctions))
	for _, a := range env.Payload.Auctions {
		auctions = append(auctions, a.toDomain())
	}
	return auctions, nil
}

// doGet issues a GET request with the given extra headers and decodes the JSON
// body into out. Every failure mode surfaces as a domain.FetchError.
func (c *Client) doGet(ctx context.Context, path string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &domain.FetchError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.FetchError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domain.FetchError{
			Endpoint: path,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.FetchError{Endpoint: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
