package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brandkit-studio/brandkit/internal/generation"
	"github.com/brandkit-studio/brandkit/internal/storage"
)

type Handler struct {
	orchestrator *generation.Orchestrator
	sessionStore *storage.SessionStore
}

// New creates the HTTP handler set. A nil orchestrator means no generative
// provider is configured; generation requests then fail with a 500 before any
// processing begins.
func New(orchestrator *generation.Orchestrator) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		sessionStore: storage.New(),
	}
}

// errorResponse is the failure body shape for every endpoint.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message, details string, code int) {
	slog.Error(message, "details", details, "status", code)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message, Details: details}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}
