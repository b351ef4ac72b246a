// Package worldstate is the REST client for the game-state API, which exposes
// the live arbitration rotation and the Cetus day/night cycle.
package worldstate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cephalon/ordis/internal/domain"
)

const requestTimeout = 5 * time.Second

// Client is the game-state API client.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewClient creates a worldstate client.
//
// baseURL is the platform-scoped API root, e.g.
// "https://api.warframestat.us/pc". language selects the localization of node
// and mission names, e.g. "zh".
func NewClient(baseURL, language string) *Client {
	return &Client{
		baseURL:  baseURL,
		language: language,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Arbitration fetches the current arbitration rotation.
func (c *Client) Arbitration(ctx context.Context) (domain.Arbitration, error) {
	var api apiArbitration
	if err := c.doGet(ctx, "/arbitration?language="+c.language, &api); err != nil {
		return domain.Arbitration{}, err
	}
	return api.toDomain(), nil
}

// CetusCycle fetches the current Cetus day/night phase.
func (c *Client) CetusCycle(ctx context.Context) (domain.CetusCycle, error) {
	var api apiCetusCycle
	if err := c.doGet(ctx, "/cetusCycle", &api); err != nil {
		return domain.CetusCycle{}, err
	}
	return api.toDomain(), nil
}

// doGet issues a GET request and decodes the JSON body into out. Every failure
// mode (transport, status, decode) surfaces as a domain.FetchError.
func (c *Client) doGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &domain.FetchError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")

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
