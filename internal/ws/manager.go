// Package ws provides the WebSocket event stream that pushes mascot state
// transitions and chat lifecycle events to connected clients.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 5 * time.Second

// Event is one message on the stream.
type Event struct {
	Type      string `json:"type"`
	State     string `json:"state,omitempty"`
	Glyph     string `json:"glyph,omitempty"`
	Animation string `json:"animation,omitempty"`
}

// Manager tracks the active WebSocket connection per user/session pair.
type Manager struct {
	mu     sync.RWMutex
	active map[string]map[string]*websocket.Conn
}

// NewManager creates a new connection manager.
func NewManager() *Manager {
	return &Manager{
		active: make(map[string]map[string]*websocket.Conn),
	}
}

// GetActive returns the active connection for a user and session.
func (m *Manager) GetActive(userID, sessionID string) *websocket.Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sessions, ok := m.active[userID]; ok {
		return sessions[sessionID]
	}
	return nil
}

// Register adds a new WebSocket connection for a user/session.
func (m *Manager) Register(userID, sessionID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.active[userID]; !exists {
		m.active[userID] = make(map[string]*websocket.Conn)
	}

	if existing, exists := m.active[userID][sessionID]; exists && existing != conn {
		_ = existing.Close(websocket.StatusNormalClosure, "session replaced")
	}

	m.active[userID][sessionID] = conn
	slog.Info("Chat event stream registered", "user_id", userID, "session_id", sessionID)
}

// Unregister removes a WebSocket connection for a user/session.
func (m *Manager) Unregister(userID, sessionID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessions, ok := m.active[userID]; ok {
		if current, exists := sessions[sessionID]; exists && current == conn {
			delete(sessions, sessionID)
			if len(sessions) == 0 {
				delete(m.active, userID)
			}
			slog.Info("Chat event stream unregistered", "user_id", userID, "session_id", sessionID)
		}
	}
}

// Send pushes an event to the user's session if it has a live connection.
// Events for sessions without a connection are dropped: the stream is a
// progress feed, not a delivery guarantee.
func (m *Manager) Send(userID, sessionID string, event Event) {
	conn := m.GetActive(userID, sessionID)
	if conn == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to encode stream event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("failed to write stream event", "user_id", userID, "session_id", sessionID, "error", err)
	}
}

// CloseSession forcefully terminates all active connections for a user's
// session, used by the TTL worker.
func (m *Manager) CloseSession(userID, sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions, ok := m.active[userID]
	if !ok {
		return
	}

	if conn, exists := sessions[sessionID]; exists {
		_ = conn.Close(websocket.StatusNormalClosure, "session expired")
		delete(sessions, sessionID)
		if len(sessions) == 0 {
			delete(m.active, userID)
		}
		slog.Info("Chat event stream closed", "user_id", userID, "session_id", sessionID)
	}
}
