package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/infrastructure/metrics"
	"github.com/smartmoney/walletd/internal/session"
)

// InvoiceHandler handles invoice draft submissions.
type InvoiceHandler struct {
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(sessions *session.Manager, m *metrics.Metrics) *InvoiceHandler {
	return &InvoiceHandler{sessions: sessions, metrics: m}
}

// Submit validates an invoice draft and, on success, fans out
// notifications to the fixed recipient set. Rejections carry the exact
// unmet precondition in the response body.
func (h *InvoiceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, mapDomainError(err), "session not found", err.Error())
		return
	}

	var req dto.SubmitInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := s.Invoice.Submit(r.Context(), req.ToDomain())
	if err != nil {
		if h.metrics != nil {
			h.metrics.InvoiceSubmissions.WithLabelValues("rejected").Inc()
		}
		writeError(w, mapDomainError(err), "invoice rejected", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.InvoiceSubmissions.WithLabelValues("accepted").Inc()
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceResultFromUseCase(result))
}
