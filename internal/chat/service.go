// Package chat implements the conversation turn pipeline: one user prompt
// in, one assistant reply (or error) out, with mascot state transitions
// along the way.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Jiyan009/Mufasa-AI/internal/domain"
	"github.com/Jiyan009/Mufasa-AI/internal/language"
	"github.com/Jiyan009/Mufasa-AI/internal/mascot"
	"github.com/Jiyan009/Mufasa-AI/internal/sarvam"
	"github.com/Jiyan009/Mufasa-AI/internal/store"
)

// ErrEmptyPrompt is returned when a turn is submitted without content.
var ErrEmptyPrompt = errors.New("empty prompt")

// translationSeparator joins the translated reply and the English
// original when auto-translate is active.
const translationSeparator = "\n\n---\n*Original (English):* "

// unexpectedErrorMessage is shown for local failures that are not provider
// errors, so the user can tell "the assistant couldn't answer" apart from
// "something broke locally".
const unexpectedErrorMessage = "Unexpected error. Please try again."

// AIClient is the slice of the Sarvam client the pipeline needs.
type AIClient interface {
	ChatCompletion(ctx context.Context, messages []domain.Message, opts sarvam.ChatOptions) sarvam.Result
	Translate(ctx context.Context, text, source, target string, opts sarvam.TranslateOptions) sarvam.Result
}

// SideProvider answers a side command (weather, search) with display text.
type SideProvider interface {
	Lookup(ctx context.Context, arg string) string
}

// StateListener observes mascot transitions as they happen, before the
// turn completes. The WebSocket layer uses this to stream progress.
type StateListener func(userID, sessionID string, state mascot.State)

// ErrorKind distinguishes the two failure classes a turn can surface.
type ErrorKind string

const (
	// ErrorProvider marks a failure reported by (or while reaching) the
	// remote AI service.
	ErrorProvider ErrorKind = "provider"
	// ErrorUnexpected marks a local failure outside the provider boundary.
	ErrorUnexpected ErrorKind = "unexpected"
)

// TurnResult is the outcome of one turn.
type TurnResult struct {
	Reply      string
	Mascot     mascot.State
	Command    string // "weather" or "search" when a side command ran
	Translated bool
	ErrKind    ErrorKind
	Err        string
}

func (r TurnResult) Failed() bool {
	return r.ErrKind != ""
}

// Options tunes the pipeline.
type Options struct {
	Temperature float64
	// HappyDelay is the cosmetic pause between excited and happy.
	HappyDelay time.Duration
}

// Service orchestrates conversation turns over persisted sessions.
type Service struct {
	repo     store.Repository
	ai       AIClient
	weather  SideProvider
	search   SideProvider
	opts     Options
	listener StateListener
	log      TurnLogger
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewService creates the turn pipeline service.
func NewService(repo store.Repository, ai AIClient, weather, search SideProvider, opts Options) *Service {
	if opts.Temperature == 0 {
		opts.Temperature = 0.8
	}
	return &Service{
		repo:    repo,
		ai:      ai,
		weather: weather,
		search:  search,
		opts:    opts,
		log:     noopTurnLogger{},
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// SetStateListener registers the mascot transition observer.
func (s *Service) SetStateListener(l StateListener) {
	s.listener = l
}

// SetTurnLogger registers the turn logger.
func (s *Service) SetTurnLogger(l TurnLogger) {
	if l != nil {
		s.log = l
	}
}

// GetOrCreateSession loads the chat session for a user/session pair,
// creating an idle English session on first contact.
func (s *Service) GetOrCreateSession(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	sess, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		return sess, nil
	}

	now := s.now()
	sess = &domain.ChatSession{
		UserID:    userID,
		SessionID: sessionID,
		Language:  language.DefaultCode,
		Mascot:    string(mascot.Idle),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Turn runs one conversation turn. Provider failures and local failures
// are folded into the TurnResult; the only Go error returned is
// ErrEmptyPrompt (a validation failure that changes no state).
func (s *Service) Turn(ctx context.Context, userID, sessionID, prompt string) (TurnResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return TurnResult{}, ErrEmptyPrompt
	}

	sess, err := s.GetOrCreateSession(ctx, userID, sessionID)
	if err != nil {
		slog.Error("failed to load chat session", "user_id", userID, "session_id", sessionID, "error", err)
		return s.unexpected(ctx, nil, userID, sessionID, err), nil
	}

	// The user message and the thinking state are observable before any
	// network call so the UI has feedback during a slow remote request.
	sess.Append(domain.RoleUser, prompt)
	s.setMascot(sess, mascot.Thinking)
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		return s.unexpected(ctx, sess, userID, sessionID, err), nil
	}
	s.log.Log(TurnLogEvent{
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		UserID:    userID,
		SessionID: sessionID,
		Event:     "user_message",
		Content:   prompt,
	})

	// Side-command short-circuit: a recognized prefix bypasses the chat
	// call entirely and the collaborator's text becomes the reply.
	if cmd, arg, okCmd := ParseCommand(prompt); okCmd {
		reply := s.dispatchCommand(ctx, cmd, arg)
		return s.commit(ctx, sess, TurnResult{Reply: reply, Command: string(cmd)}), nil
	}

	effective := sess.WithSystemMessage(language.SystemMessage(sess.Language))

	chatOpts := sarvam.DefaultChatOptions()
	chatOpts.Temperature = s.opts.Temperature
	res := s.ai.ChatCompletion(ctx, effective, chatOpts)
	if !res.Success {
		s.setMascot(sess, mascot.Sad)
		if err := s.repo.UpsertSession(ctx, sess); err != nil {
			slog.Warn("failed to persist sad mascot state", "user_id", userID, "error", err)
		}
		s.log.Log(TurnLogEvent{
			Timestamp: s.now().UTC().Format(time.RFC3339Nano),
			UserID:    userID,
			SessionID: sessionID,
			Event:     "provider_error",
			Content:   res.Err,
		})
		return TurnResult{Mascot: mascot.Sad, ErrKind: ErrorProvider, Err: res.Err}, nil
	}

	reply := res.Value
	translated := false
	if sess.AutoTranslate && sess.Language != language.DefaultCode {
		tr := s.ai.Translate(ctx, reply, language.DefaultCode, sess.Language, sarvam.TranslateOptions{})
		if tr.Success {
			reply = tr.Value + translationSeparator + reply
			translated = true
		} else {
			// Translation failure degrades silently to the English reply.
			slog.Warn("auto-translate failed, falling back to original",
				"user_id", userID, "language", sess.Language, "error", tr.Err)
		}
	}

	return s.commit(ctx, sess, TurnResult{Reply: reply, Translated: translated}), nil
}

// commit finishes a successful turn: excited, append assistant message,
// cosmetic pause, happy.
func (s *Service) commit(ctx context.Context, sess *domain.ChatSession, result TurnResult) TurnResult {
	s.setMascot(sess, mascot.Excited)
	sess.Append(domain.RoleAssistant, result.Reply)
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		// Strip the assistant entry so the stored history matches what the
		// failure reports: no new assistant message.
		sess.Messages = sess.Messages[:len(sess.Messages)-1]
		return s.unexpected(ctx, sess, sess.UserID, sess.SessionID, err)
	}
	s.log.Log(TurnLogEvent{
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		UserID:    sess.UserID,
		SessionID: sess.SessionID,
		Event:     "assistant_message",
		Content:   result.Reply,
	})

	s.sleep(s.opts.HappyDelay)

	s.setMascot(sess, mascot.Happy)
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		// The turn already committed; losing the final mascot flip is
		// cosmetic only.
		slog.Warn("failed to persist happy mascot state", "user_id", sess.UserID, "error", err)
	}

	result.Mascot = mascot.Happy
	return result
}

// unexpected handles local failures: confused mascot, generic message,
// no assistant entry.
func (s *Service) unexpected(ctx context.Context, sess *domain.ChatSession, userID, sessionID string, cause error) TurnResult {
	slog.Error("unexpected turn failure", "user_id", userID, "session_id", sessionID, "error", cause)
	if sess != nil {
		s.setMascot(sess, mascot.Confused)
		if err := s.repo.UpsertSession(ctx, sess); err != nil {
			slog.Warn("failed to persist confused mascot state", "user_id", userID, "error", err)
		}
	} else if s.listener != nil {
		s.listener(userID, sessionID, mascot.Confused)
	}
	s.log.Log(TurnLogEvent{
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		UserID:    userID,
		SessionID: sessionID,
		Event:     "unexpected_error",
		Content:   cause.Error(),
	})
	return TurnResult{Mascot: mascot.Confused, ErrKind: ErrorUnexpected, Err: unexpectedErrorMessage}
}

func (s *Service) dispatchCommand(ctx context.Context, cmd Command, arg string) string {
	switch cmd {
	case CommandWeather:
		return s.weather.Lookup(ctx, arg)
	case CommandSearch:
		return s.search.Lookup(ctx, arg)
	default:
		return unexpectedErrorMessage
	}
}

func (s *Service) setMascot(sess *domain.ChatSession, state mascot.State) {
	sess.Mascot = string(state)
	if s.listener != nil {
		s.listener(sess.UserID, sess.SessionID, state)
	}
}

// Clear resets the conversation history and mascot, keeping settings.
// Mirrors the "Clear Chat History" action.
func (s *Service) Clear(ctx context.Context, userID, sessionID string) (*domain.ChatSession, error) {
	sess, err := s.GetOrCreateSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	sess.ClearHistory()
	s.setMascot(sess, mascot.Idle)
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Settings carries optional session setting updates; nil fields are left
// unchanged.
type Settings struct {
	Language      *string `json:"language,omitempty"`
	AutoTranslate *bool   `json:"auto_translate,omitempty"`
	DarkMode      *bool   `json:"dark_mode,omitempty"`
}

// UpdateSettings applies setting changes to a session. Unknown language
// codes are stored as-is: every catalog lookup falls back to the default
// language, so they degrade instead of failing.
func (s *Service) UpdateSettings(ctx context.Context, userID, sessionID string, settings Settings) (*domain.ChatSession, error) {
	sess, err := s.GetOrCreateSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if settings.Language != nil {
		code := strings.TrimSpace(*settings.Language)
		if code != "" {
			if !language.Supported(code) {
				slog.Warn("unsupported language selected, default strings will be used",
					"user_id", userID, "language", code)
			}
			sess.Language = code
		}
	}
	if settings.AutoTranslate != nil {
		sess.AutoTranslate = *settings.AutoTranslate
	}
	if settings.DarkMode != nil {
		sess.DarkMode = *settings.DarkMode
	}
	if err := s.repo.UpsertSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
