package chat

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// TurnLogEvent is one NDJSON record in the turn log.
type TurnLogEvent struct {
	Timestamp string `json:"ts"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
	Content   string `json:"content"`
}

// TurnLogger records turn events for later review.
type TurnLogger interface {
	Log(event TurnLogEvent)
	Close() error
}

type noopTurnLogger struct{}

func (noopTurnLogger) Log(TurnLogEvent) {}
func (noopTurnLogger) Close() error     { return nil }

// NoopTurnLogger returns a logger that discards everything.
func NoopTurnLogger() TurnLogger { return noopTurnLogger{} }

var sessionFilePattern = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// NDJSONTurnLogger appends one JSON line per event to
// <dir>/<user_id>/<session_id>.ndjson, writing from a background goroutine
// so the turn pipeline never blocks on disk.
type NDJSONTurnLogger struct {
	dir   string
	queue chan TurnLogEvent
	done  chan struct{}
	once  sync.Once
}

// NewNDJSONTurnLogger creates the logger and starts its writer goroutine.
func NewNDJSONTurnLogger(dir string, queueSize int) (*NDJSONTurnLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create turn log directory: %w", err)
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	l := &NDJSONTurnLogger{
		dir:   dir,
		queue: make(chan TurnLogEvent, queueSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l, nil
}

// Log enqueues an event. Events are dropped when the queue is full rather
// than blocking a turn.
func (l *NDJSONTurnLogger) Log(event TurnLogEvent) {
	select {
	case l.queue <- event:
	default:
		slog.Warn("turn log queue full, dropping event", "user_id", event.UserID, "event", event.Event)
	}
}

// Close drains the queue and stops the writer goroutine.
func (l *NDJSONTurnLogger) Close() error {
	l.once.Do(func() {
		close(l.queue)
		<-l.done
	})
	return nil
}

func (l *NDJSONTurnLogger) run() {
	defer close(l.done)
	for event := range l.queue {
		if err := l.write(event); err != nil {
			slog.Warn("failed to write turn log event", "user_id", event.UserID, "error", err)
		}
	}
}

func (l *NDJSONTurnLogger) write(event TurnLogEvent) error {
	userDir := filepath.Join(l.dir, sanitizeLogName(event.UserID))
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return fmt.Errorf("create user log directory: %w", err)
	}

	path := filepath.Join(userDir, sanitizeLogName(event.SessionID)+".ndjson")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open turn log file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Debug("failed to close turn log file", "path", path, "error", closeErr)
		}
	}()

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode turn log event: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append turn log event: %w", err)
	}
	return nil
}

func sanitizeLogName(name string) string {
	cleaned := sessionFilePattern.ReplaceAllString(name, "_")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}
