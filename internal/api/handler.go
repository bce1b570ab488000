// Package api provides HTTP handlers for the Mufasa AI API.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Jiyan009/Mufasa-AI/internal/chat"
	"github.com/Jiyan009/Mufasa-AI/internal/config"
	"github.com/Jiyan009/Mufasa-AI/internal/sarvam"
	"github.com/Jiyan009/Mufasa-AI/internal/store"
)

// Detector is the language detection slice of the Sarvam client.
type Detector interface {
	DetectLanguage(ctx context.Context, text string) sarvam.Result
}

// Handler serves the chat and session endpoints.
type Handler struct {
	chat     *chat.Service
	detector Detector
	repo     store.Repository
	cfg      *config.Config
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(chatSvc *chat.Service, detector Detector, repo store.Repository, cfg *config.Config) *Handler {
	return &Handler{
		chat:     chatSvc,
		detector: detector,
		repo:     repo,
		cfg:      cfg,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
