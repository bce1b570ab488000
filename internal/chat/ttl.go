package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jiyan009/Mufasa-AI/internal/store"
)

const ttlWorkerInterval = 5 * time.Minute

// CleanupCallback is called when a session is removed by the TTL worker,
// so the WebSocket layer can close its live connections.
type CleanupCallback func(userID, sessionID string)

// StartTTLWorker runs a background goroutine that periodically sweeps for
// idle chat sessions and removes them. This is what keeps conversation
// history session-scoped: nothing survives past the TTL.
func StartTTLWorker(ctx context.Context, repo store.Repository, ttl time.Duration, onCleanup CleanupCallback) {
	ticker := time.NewTicker(ttlWorkerInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session TTL worker started", "interval", ttlWorkerInterval, "ttl", ttl)

		for {
			select {
			case <-ticker.C:
				sweepExpiredSessions(ctx, repo, ttl, onCleanup)
			case <-ctx.Done():
				slog.Info("Session TTL worker shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func sweepExpiredSessions(ctx context.Context, repo store.Repository, ttl time.Duration, onCleanup CleanupCallback) {
	expired, err := repo.GetExpiredSessions(ctx, ttl)
	if err != nil {
		slog.Error("TTL worker failed to get expired sessions", "error", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	slog.Info("TTL worker found expired sessions", "count", len(expired))

	for _, sess := range expired {
		if onCleanup != nil {
			onCleanup(sess.UserID, sess.SessionID)
		}

		if err := repo.DeleteSession(ctx, sess.UserID, sess.SessionID); err != nil {
			slog.Warn("TTL worker failed to delete session",
				"error", err,
				"user_id", sess.UserID,
				"session_id", sess.SessionID)
		}
	}

	slog.Info("TTL worker cleanup completed", "cleaned", len(expired))
}
