// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/Jiyan009/Mufasa-AI/internal/domain"
)

// Repository defines the interface for persisting chat session state.
// Sessions live only for their lifetime: the TTL sweeper and explicit
// clears are the only consumers of the delete operations.
type Repository interface {
	// GetSession retrieves a chat session, or nil if none exists.
	GetSession(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error)

	// UpsertSession creates or updates a chat session.
	UpsertSession(ctx context.Context, session *domain.ChatSession) error

	// DeleteSession removes one chat session.
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// GetExpiredSessions retrieves sessions idle longer than ttl.
	GetExpiredSessions(ctx context.Context, ttl time.Duration) ([]*domain.ChatSession, error)

	// CleanupExpiredSessions removes sessions idle longer than ttl and
	// returns how many were deleted.
	CleanupExpiredSessions(ctx context.Context, ttl time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
