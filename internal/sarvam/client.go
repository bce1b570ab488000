// Package sarvam wraps the Sarvam AI REST endpoints: chat completion,
// text translation and language detection. Every operation normalizes
// transport and provider failures into the same Result shape so callers
// branch on a single success flag instead of error types.
package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jiyan009/Mufasa-AI/internal/domain"
)

// Per-operation timeouts.
const (
	chatTimeout      = 30 * time.Second
	translateTimeout = 15 * time.Second
	detectTimeout    = 10 * time.Second
)

const subscriptionKeyHeader = "api-subscription-key"

// Result is the uniform outcome of every client operation. Exactly one of
// Value or Err carries meaning, selected by Success.
type Result struct {
	Success bool
	Value   string
	Err     string
}

func ok(value string) Result {
	return Result{Success: true, Value: value}
}

func fail(format string, args ...any) Result {
	return Result{Err: fmt.Sprintf(format, args...)}
}

// Client calls the Sarvam AI API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a Sarvam API client. The model is used for chat
// completions; translation always uses mayura:v1.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

// ChatOptions carries sampling parameters for a chat completion.
type ChatOptions struct {
	Temperature      float64
	TopP             float64
	MaxTokens        int
	Stop             []string
	FrequencyPenalty float64
	PresencePenalty  float64
	WikiGrounding    bool
}

// DefaultChatOptions returns the sampling defaults used by the pipeline.
func DefaultChatOptions() ChatOptions {
	return ChatOptions{Temperature: 0.8, TopP: 0.9}
}

type chatRequest struct {
	Messages         []domain.Message `json:"messages"`
	Model            string           `json:"model"`
	Temperature      float64          `json:"temperature"`
	TopP             float64          `json:"top_p"`
	FrequencyPenalty float64          `json:"frequency_penalty"`
	PresencePenalty  float64          `json:"presence_penalty"`
	WikiGrounding    bool             `json:"wiki_grounding"`
	MaxTokens        *int             `json:"max_tokens,omitempty"`
	Stop             []string         `json:"stop,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion posts the full message history plus sampling parameters
// to the chat endpoint and returns the first choice's content.
func (c *Client) ChatCompletion(ctx context.Context, messages []domain.Message, opts ChatOptions) Result {
	req := chatRequest{
		Messages:         messages,
		Model:            c.model,
		Temperature:      opts.Temperature,
		TopP:             opts.TopP,
		FrequencyPenalty: opts.FrequencyPenalty,
		PresencePenalty:  opts.PresencePenalty,
		WikiGrounding:    opts.WikiGrounding,
		Stop:             opts.Stop,
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = &opts.MaxTokens
	}

	body, errMsg := c.post(ctx, "/chat/completions", req, chatTimeout)
	if errMsg != "" {
		return fail("API error: %s", errMsg)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fail("API error: malformed response: %v", err)
	}
	if len(resp.Choices) == 0 {
		return fail("No response choices returned.")
	}
	return ok(resp.Choices[0].Message.Content)
}

// TranslateOptions carries optional translation parameters.
type TranslateOptions struct {
	SpeakerGender string
	Mode          string
}

type translateRequest struct {
	Input               string `json:"input"`
	SourceLanguageCode  string `json:"source_language_code"`
	TargetLanguageCode  string `json:"target_language_code"`
	SpeakerGender       string `json:"speaker_gender"`
	Mode                string `json:"mode"`
	Model               string `json:"model"`
	EnablePreprocessing bool   `json:"enable_preprocessing"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate converts text between two language codes. Only the translated
// text is part of the contract surface.
func (c *Client) Translate(ctx context.Context, text, source, target string, opts TranslateOptions) Result {
	if opts.SpeakerGender == "" {
		opts.SpeakerGender = "Male"
	}
	if opts.Mode == "" {
		opts.Mode = "formal"
	}

	req := translateRequest{
		Input:               text,
		SourceLanguageCode:  source,
		TargetLanguageCode:  target,
		SpeakerGender:       opts.SpeakerGender,
		Mode:                opts.Mode,
		Model:               "mayura:v1",
		EnablePreprocessing: true,
	}

	body, errMsg := c.post(ctx, "/translate", req, translateTimeout)
	if errMsg != "" {
		return fail("Translation failed: %s", errMsg)
	}

	var resp translateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fail("Translation failed: malformed response: %v", err)
	}
	return ok(resp.TranslatedText)
}

type detectRequest struct {
	Input string `json:"input"`
}

type detectResponse struct {
	LanguageCode string `json:"language_code"`
	ScriptCode   string `json:"script_code"`
}

// DetectLanguage returns the detected language code for a text sample.
func (c *Client) DetectLanguage(ctx context.Context, text string) Result {
	body, errMsg := c.post(ctx, "/detect-language", detectRequest{Input: text}, detectTimeout)
	if errMsg != "" {
		return fail("Detection failed: %s", errMsg)
	}

	var resp detectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fail("Detection failed: malformed response: %v", err)
	}
	return ok(resp.LanguageCode)
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// post issues one JSON POST with a bounded timeout and returns the body on
// HTTP 200, or a normalized error message for any transport failure or
// non-200 status (preferring the provider-supplied message).
func (c *Client) post(ctx context.Context, path string, payload any, timeout time.Duration) (body []byte, errMsg string) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Sprintf("encode request: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Sprintf("build request: %v", err)
	}
	req.Header.Set(subscriptionKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Sprintf("request error: %v", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("failed to close sarvam response body", "path", path, "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Sprintf("read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		var pe providerError
		if json.Unmarshal(raw, &pe) == nil && pe.Error.Message != "" {
			return nil, pe.Error.Message
		}
		return nil, fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	return raw, ""
}
