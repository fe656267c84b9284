package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartmoney/walletd/internal/adapter/http/dto"
	"github.com/smartmoney/walletd/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyRecipient):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvoiceNotApproved):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvoiceMissingCustomer):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvoiceEmptyTotal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
