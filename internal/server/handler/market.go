package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cephalon/ordis/internal/domain"
	"github.com/cephalon/ordis/internal/query"
	"github.com/cephalon/ordis/internal/render"
)

// MarketHandler serves the marketplace query and sync endpoints.
type MarketHandler struct {
	svc    *query.Service
	logger *slog.Logger
}

// NewMarketHandler creates a MarketHandler backed by the query service.
func NewMarketHandler(svc *query.Service, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{svc: svc, logger: logger}
}

// GetOrders returns the rendered cheapest sell listings for an item.
// GET /api/orders/{name}?rank=N
func (h *MarketHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var modRank *int
	if v := r.URL.Query().Get("rank"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rank must be a number")
			return
		}
		modRank = &n
	}

	text, err := h.svc.ItemOrders(r.Context(), name, modRank)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"text": render.ItemNotFound(domain.NormalizeName(name)),
			})
			return
		}
		h.logger.ErrorContext(r.Context(), "order query failed",
			slog.String("item", name),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// GetRivenAuctions returns the rendered cheapest riven auctions for a weapon.
// Unresolved attribute names are reported alongside the results.
// GET /api/rivens/{name}?positive=a,b&negative=c
func (h *MarketHandler) GetRivenAuctions(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q := r.URL.Query()

	var positives []string
	if v := q.Get("positive"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				positives = append(positives, p)
			}
		}
	}
	negative := q.Get("negative")

	result, err := h.svc.RivenAuctions(r.Context(), name, positives, negative)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"text":       render.RivenNotFound(domain.NormalizeName(name)),
				"unresolved": result.Unresolved,
			})
			return
		}
		h.logger.ErrorContext(r.Context(), "riven query failed",
			slog.String("weapon", name),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"text":       result.Text,
		"unresolved": result.Unresolved,
	})
}

// SyncItems refreshes the item name index from the marketplace catalog.
// POST /api/sync/items
func (h *MarketHandler) SyncItems(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, h.svc.SyncItems)
}

// SyncRivens refreshes the riven name index from the marketplace catalog.
// POST /api/sync/rivens
func (h *MarketHandler) SyncRivens(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, h.svc.SyncRivens)
}

func (h *MarketHandler) sync(w http.ResponseWriter, r *http.Request, run func(ctx context.Context) (query.SyncResult, error)) {
	result, err := run(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "sync failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "sync failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"written": result.Written,
		"total":   result.Total,
		"text":    render.SyncResult(result.Written, result.Total),
	})
}
