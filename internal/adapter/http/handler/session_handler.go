package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/session"
)

// SessionHandler opens sessions and serves the wallet snapshot.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Open creates a fresh session seeded with the demo snapshot.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Open(r.Context())

	writeJSON(w, http.StatusCreated, &dto.SessionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
	})
}

// Snapshot returns the session's accounts, per-currency totals and the
// full ledger, newest first.
func (h *SessionHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, mapDomainError(err), "session not found", err.Error())
		return
	}

	accounts, err := s.Wallet.Accounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load accounts", err.Error())
		return
	}

	records, err := s.Wallet.Records(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load records", err.Error())
		return
	}

	totalSAR, err := s.Wallet.TotalByCurrency(r.Context(), "SAR")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to total balances", err.Error())
		return
	}

	totalUSD, err := s.Wallet.TotalByCurrency(r.Context(), "USD")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to total balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &dto.SnapshotResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		TotalSAR: totalSAR,
		TotalUSD: totalUSD,
		Records:  dto.RecordsFromDomain(records),
	})
}
