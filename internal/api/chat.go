package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Jiyan009/Mufasa-AI/internal/chat"
	"github.com/Jiyan009/Mufasa-AI/internal/domain"
	"github.com/Jiyan009/Mufasa-AI/internal/identity"
	"github.com/Jiyan009/Mufasa-AI/internal/language"
	"github.com/Jiyan009/Mufasa-AI/internal/mascot"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Get("/session", h.HandleGetSession)
		r.Post("/session/clear", h.HandleClearSession)
		r.Put("/session/settings", h.HandleUpdateSettings)
		r.Get("/languages", h.HandleLanguages)
		r.Post("/detect-language", h.HandleDetectLanguage)
		r.Get("/healthz", h.HandleHealth)
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply      string `json:"reply,omitempty"`
	Mascot     string `json:"mascot"`
	Glyph      string `json:"glyph"`
	Animation  string `json:"animation"`
	Command    string `json:"command,omitempty"`
	Translated bool   `json:"translated,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
}

// HandleChat runs one conversation turn. Turn-level failures (provider or
// unexpected) come back as 200 with error fields so the UI renders them
// inline like any other turn outcome; only request-level problems get
// error status codes.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBody)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slog.Info("Chat turn request",
		"user_id", userID,
		"session_id", sessionID,
		"message_length", len(req.Message),
	)

	result, err := h.chat.Turn(r.Context(), userID, sessionID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyPrompt) {
			Error(w, http.StatusBadRequest, "message is required")
			return
		}
		slog.Error("Chat turn failed", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusOK, chatResponse{
		Reply:      result.Reply,
		Mascot:     string(result.Mascot),
		Glyph:      mascot.Glyph(result.Mascot),
		Animation:  mascot.AnimationClass(result.Mascot),
		Command:    result.Command,
		Translated: result.Translated,
		Error:      result.Err,
		ErrorKind:  string(result.ErrKind),
	})
}

type sessionResponse struct {
	Messages        []domain.Message `json:"messages"`
	Language        string           `json:"language"`
	LanguageName    string           `json:"language_name"`
	AutoTranslate   bool             `json:"auto_translate"`
	DarkMode        bool             `json:"dark_mode"`
	Mascot          string           `json:"mascot"`
	Glyph           string           `json:"glyph"`
	Animation       string           `json:"animation"`
	Placeholder     string           `json:"placeholder"`
	ThinkingMessage string           `json:"thinking_message"`
	WelcomeMessage  string           `json:"welcome_message"`
}

func sessionToResponse(sess *domain.ChatSession) sessionResponse {
	messages := sess.Messages
	if messages == nil {
		messages = []domain.Message{}
	}
	state := mascot.State(sess.Mascot)
	return sessionResponse{
		Messages:        messages,
		Language:        sess.Language,
		LanguageName:    language.Name(sess.Language),
		AutoTranslate:   sess.AutoTranslate,
		DarkMode:        sess.DarkMode,
		Mascot:          sess.Mascot,
		Glyph:           mascot.Glyph(state),
		Animation:       mascot.AnimationClass(state),
		Placeholder:     language.Placeholder(sess.Language),
		ThinkingMessage: language.ThinkingMessage(sess.Language),
		WelcomeMessage:  language.WelcomeMessage(sess.Language),
	}
}

// HandleGetSession returns the full session view: history, settings,
// mascot state and the UI strings for the selected language.
func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	sess, err := h.chat.GetOrCreateSession(r.Context(), userID, sessionID)
	if err != nil {
		slog.Error("Failed to load session", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	JSON(w, http.StatusOK, sessionToResponse(sess))
}

// HandleClearSession resets the conversation history and mascot state.
func (h *Handler) HandleClearSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	sess, err := h.chat.Clear(r.Context(), userID, sessionID)
	if err != nil {
		slog.Error("Failed to clear session", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	JSON(w, http.StatusOK, sessionToResponse(sess))
}

// HandleUpdateSettings applies language/auto-translate/dark-mode changes.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBody)

	var settings chat.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.chat.UpdateSettings(r.Context(), userID, sessionID, settings)
	if err != nil {
		slog.Error("Failed to update settings", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to update settings")
		return
	}

	JSON(w, http.StatusOK, sessionToResponse(sess))
}

type languagesResponse struct {
	Default string            `json:"default"`
	Options []language.Option `json:"options"`
}

// HandleLanguages returns the language catalog for the selector.
func (h *Handler) HandleLanguages(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, languagesResponse{
		Default: language.DefaultCode,
		Options: language.Options(),
	})
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Success  bool   `json:"success"`
	Language string `json:"language,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleDetectLanguage passes text through the detection endpoint.
func (h *Handler) HandleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBody)

	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		Error(w, http.StatusBadRequest, "text is required")
		return
	}

	res := h.detector.DetectLanguage(r.Context(), req.Text)
	JSON(w, http.StatusOK, detectResponse{
		Success:  res.Success,
		Language: res.Value,
		Error:    res.Err,
	})
}

type healthResponse struct {
	Status   string          `json:"status"`
	Features map[string]bool `json:"features"`
}

// HandleHealth reports store connectivity and which side features have
// keys configured. A missing key is a degraded feature, not an outage.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.repo.Ping(r.Context()); err != nil {
		slog.Error("Health check: database unreachable", "error", err)
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	JSON(w, code, healthResponse{
		Status: status,
		Features: map[string]bool{
			"chat":    h.cfg.HasSarvamKey(),
			"weather": h.cfg.Weather.APIKey != "",
			"search":  h.cfg.Search.APIKey != "",
		},
	})
}
