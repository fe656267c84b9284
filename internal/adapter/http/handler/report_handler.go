package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/session"
)

// ReportHandler serves the derived report endpoints.
type ReportHandler struct {
	sessions *session.Manager
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(sessions *session.Manager) *ReportHandler {
	return &ReportHandler{sessions: sessions}
}

func (h *ReportHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, mapDomainError(err), "session not found", err.Error())
		return nil, false
	}
	return s, true
}

// Summary returns income, spend, savings and burn rate over the
// session's current ledger.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	summary, err := s.Report.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}

// Crypto returns the digital assets wallet valuation.
func (h *ReportHandler) Crypto(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	portfolio, err := s.Report.CryptoPortfolio(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to value portfolio", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PortfolioFromUseCase(portfolio))
}
