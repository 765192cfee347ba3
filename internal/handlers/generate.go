package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/brandkit-studio/brandkit/internal/generation"
	"github.com/brandkit-studio/brandkit/internal/llm"
	"github.com/brandkit-studio/brandkit/internal/models"
)

// HandleGenerate runs a full content generation request.
//
// Status mapping: 500 when no provider is configured, 400 for request-shape
// problems, 401 when a top-level failure is authentication-shaped, 500
// otherwise. Per-format provider failures never surface here; they are
// absorbed into artifact bodies upstream.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", "", http.StatusMethodNotAllowed)
		return
	}

	if h.orchestrator == nil {
		h.writeError(w, "Generation service is not configured",
			"Set the API key for the configured provider (e.g. ANTHROPIC_API_KEY) and restart.",
			http.StatusInternalServerError)
		return
	}

	var req generation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.orchestrator.Run(r.Context(), req)
	if err != nil {
		var vErr *generation.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.writeError(w, vErr.Message, "", http.StatusBadRequest)
		case llm.IsAuthError(err):
			h.writeError(w, "Authentication with the AI service failed",
				"Verify the configured API key is valid and has not expired.",
				http.StatusUnauthorized)
		default:
			h.writeError(w, "Generation failed", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if len(result.Contents) > 0 {
		session := &models.GenerationSession{
			ID:                 uuid.NewString(),
			Topic:              req.Topic,
			Industry:           req.Industry,
			Formats:            req.Formats,
			Contents:           result.Contents,
			BrandVoiceAnalysis: result.BrandVoiceAnalysis,
			CreatedAt:          time.Now(),
		}
		h.sessionStore.Set(session.ID, session)
		slog.Info("Recorded generation session", "session_id", session.ID, "artifacts", len(result.Contents))
	}

	h.writeJSON(w, result)
}
