package handler

import (
	"log/slog"
	"net/http"

	"github.com/cephalon/ordis/internal/query"
)

// StateHandler serves the live game-state endpoints.
type StateHandler struct {
	svc    *query.Service
	logger *slog.Logger
}

// NewStateHandler creates a StateHandler backed by the query service.
func NewStateHandler(svc *query.Service, logger *slog.Logger) *StateHandler {
	return &StateHandler{svc: svc, logger: logger}
}

// GetArbitration returns the rendered arbitration summary.
// GET /api/arbitration
func (h *StateHandler) GetArbitration(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.CurrentArbitration(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "arbitration query failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// GetCycle returns the rendered day/night summary.
// GET /api/cycle
func (h *StateHandler) GetCycle(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.CurrentCycle(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "cycle query failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
