package ws

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jiyan009/Mufasa-AI/internal/identity"
	"github.com/Jiyan009/Mufasa-AI/internal/mascot"
	"github.com/coder/websocket"
)

// Handler upgrades requests to WebSocket connections and keeps them
// registered for the lifetime of the socket.
type Handler struct {
	manager       *Manager
	allowedOrigin string
	isDev         bool
}

// NewHandler creates a new WebSocket handler.
func NewHandler(manager *Manager, allowedOrigin string, isDev bool) *Handler {
	return &Handler{
		manager:       manager,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// MascotEvent builds a mascot transition event with its presentation
// fields resolved, ready for Manager.Send.
func MascotEvent(state mascot.State) Event {
	return Event{
		Type:      "mascot",
		State:     string(state),
		Glyph:     mascot.Glyph(state),
		Animation: mascot.AnimationClass(state),
	}
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	slog.Info("Chat stream connection request", "user_id", userID, "session_id", sessionID, "ip", r.RemoteAddr)

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "user_id", userID)
		return
	}
	defer func() {
		if closeErr := conn.Close(websocket.StatusNormalClosure, "stream ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "user_id", userID)
		}
	}()

	h.manager.Register(userID, sessionID, conn)
	defer h.manager.Unregister(userID, sessionID, conn)

	// The stream is server-push only. Reading drains client pings and
	// returns when the peer goes away.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if h.isDev || h.allowedOrigin == "" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || strings.HasPrefix(origin, h.allowedOrigin)
}
