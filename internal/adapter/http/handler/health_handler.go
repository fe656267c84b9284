package handler

import (
	"net/http"

	"github.com/smartmoney/walletd/internal/session"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	sessions *session.Manager
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions *session.Manager) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the session manager is wired. The service
// holds all state in memory, so readiness has no external dependencies.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not ready", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ready",
		"sessions": h.sessions.Count(),
	})
}
