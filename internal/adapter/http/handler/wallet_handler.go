package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/infrastructure/metrics"
	"github.com/smartmoney/walletd/internal/session"
)

// WalletHandler handles money action and wallet read requests.
type WalletHandler struct {
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(sessions *session.Manager, m *metrics.Metrics) *WalletHandler {
	return &WalletHandler{sessions: sessions, metrics: m}
}

func (h *WalletHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, mapDomainError(err), "session not found", err.Error())
		return nil, false
	}
	return s, true
}

func (h *WalletHandler) observe(action string, rec *domain.Record, err error) {
	if h.metrics == nil {
		return
	}
	if err != nil {
		h.metrics.ActionErrors.WithLabelValues(action).Inc()
		return
	}
	h.metrics.ActionsTotal.WithLabelValues(action).Inc()
	amount, _ := rec.Amount.Abs().Float64()
	h.metrics.ActionAmount.WithLabelValues(action).Observe(amount)
}

// Deposit adds cash to the primary account.
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.Deposit(r.Context(), req.Amount)
	h.observe("deposit", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// Withdraw removes cash from the primary account.
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.Withdraw(r.Context(), req.Amount)
	h.observe("withdraw", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to withdraw", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// Purchase records a described purchase against the primary account.
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.Purchase(r.Context(), req.Description, req.Amount)
	h.observe("purchase", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// Transfer records an internal transfer out of the primary account.
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.Transfer(r.Context(), req.Amount)
	h.observe("transfer", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// SendP2P records a peer-to-peer payment to a named recipient.
func (h *WalletHandler) SendP2P(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.P2PRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.SendP2P(r.Context(), req.Recipient, req.Amount)
	h.observe("p2p", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to send payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// PayVendor records a vendor payment with a server-chosen amount.
func (h *WalletHandler) PayVendor(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.VendorPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := s.Wallet.PayVendor(r.Context(), req.VendorName)
	h.observe("vendor", rec, err)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to pay vendor", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(rec))
}

// Records lists the session's ledger records, newest first.
func (h *WalletHandler) Records(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	records, err := s.Wallet.Records(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}

// Accounts lists the session's accounts.
func (h *WalletHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	accounts, err := s.Wallet.Accounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// Vendors lists the payable vendor directory.
func (h *WalletHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	vendors, err := s.Vendors.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vendors", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VendorsFromDomain(vendors))
}
