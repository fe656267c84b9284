package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/infrastructure/metrics"
	"github.com/smartmoney/walletd/internal/session"
)

// InventoryHandler handles stock consumption and inventory reads.
type InventoryHandler struct {
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(sessions *session.Manager, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{sessions: sessions, metrics: m}
}

func (h *InventoryHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, mapDomainError(err), "session not found", err.Error())
		return nil, false
	}
	return s, true
}

// Consume removes stock from an item and returns the generated
// replenishment request.
func (h *InventoryHandler) Consume(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.ConsumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	request, err := s.Inventory.Consume(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to consume stock", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ReplenishmentRequests.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.ReplenishmentFromDomain(request))
}

// Items lists the session's stocked items.
func (h *InventoryHandler) Items(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := s.Inventory.Items(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InventoryItemsFromDomain(items))
}

// Requests lists generated replenishment requests, newest first.
func (h *InventoryHandler) Requests(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	requests, err := s.Inventory.Requests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReplenishmentsFromDomain(requests))
}
