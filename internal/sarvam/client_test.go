package sarvam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jiyan009/Mufasa-AI/internal/domain"
)

func TestChatCompletionSuccess(t *testing.T) {
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("api-subscription-key"); got != "test-key" {
			t.Errorf("Expected subscription key header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"choices":[{"message":{"content":"Hello from Mufasa"}}]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.ChatCompletion(context.Background(), []domain.Message{
		{Role: domain.RoleSystem, Content: "identity"},
		{Role: domain.RoleUser, Content: "hi"},
	}, DefaultChatOptions())

	if !res.Success {
		t.Fatalf("Expected success, got error %q", res.Err)
	}
	if res.Value != "Hello from Mufasa" {
		t.Errorf("Expected first choice content, got %q", res.Value)
	}

	if gotReq["model"] != "sarvam-m" {
		t.Errorf("Expected model sarvam-m, got %v", gotReq["model"])
	}
	if gotReq["temperature"] != 0.8 {
		t.Errorf("Expected temperature 0.8, got %v", gotReq["temperature"])
	}
	if gotReq["top_p"] != 0.9 {
		t.Errorf("Expected top_p 0.9, got %v", gotReq["top_p"])
	}
	if _, ok := gotReq["wiki_grounding"]; !ok {
		t.Error("Expected wiki_grounding field in request")
	}
	if _, ok := gotReq["max_tokens"]; ok {
		t.Error("Expected max_tokens omitted when unset")
	}
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(`{"choices":[]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.ChatCompletion(context.Background(), nil, DefaultChatOptions())

	if res.Success {
		t.Fatal("Expected failure on empty choices")
	}
	if res.Err != "No response choices returned." {
		t.Errorf("Unexpected error message: %q", res.Err)
	}
}

func TestChatCompletionProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		if _, err := w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.ChatCompletion(context.Background(), nil, DefaultChatOptions())

	if res.Success {
		t.Fatal("Expected failure")
	}
	if res.Err != "API error: rate limit exceeded" {
		t.Errorf("Expected provider message surfaced, got %q", res.Err)
	}
}

func TestChatCompletionHTTPStatusFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.ChatCompletion(context.Background(), nil, DefaultChatOptions())

	if res.Success {
		t.Fatal("Expected failure")
	}
	if res.Err != "API error: HTTP 502" {
		t.Errorf("Expected status fallback message, got %q", res.Err)
	}
}

func TestChatCompletionTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.ChatCompletion(context.Background(), nil, DefaultChatOptions())

	if res.Success {
		t.Fatal("Expected failure on transport error")
	}
	if !strings.HasPrefix(res.Err, "API error: request error:") {
		t.Errorf("Expected normalized transport error, got %q", res.Err)
	}
}

func TestTranslateSuccess(t *testing.T) {
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("Expected path /translate, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if _, err := w.Write([]byte(`{"translated_text":"नमस्ते"}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.Translate(context.Background(), "Hello", "en-IN", "hi-IN", TranslateOptions{})

	if !res.Success {
		t.Fatalf("Expected success, got %q", res.Err)
	}
	if res.Value != "नमस्ते" {
		t.Errorf("Expected translated text, got %q", res.Value)
	}

	if gotReq["model"] != "mayura:v1" {
		t.Errorf("Expected translation model mayura:v1, got %v", gotReq["model"])
	}
	if gotReq["speaker_gender"] != "Male" {
		t.Errorf("Expected default speaker gender, got %v", gotReq["speaker_gender"])
	}
	if gotReq["mode"] != "formal" {
		t.Errorf("Expected default mode formal, got %v", gotReq["mode"])
	}
	if gotReq["enable_preprocessing"] != true {
		t.Errorf("Expected enable_preprocessing true, got %v", gotReq["enable_preprocessing"])
	}
	if gotReq["source_language_code"] != "en-IN" || gotReq["target_language_code"] != "hi-IN" {
		t.Errorf("Unexpected language codes: %v -> %v", gotReq["source_language_code"], gotReq["target_language_code"])
	}
}

func TestTranslateFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.Translate(context.Background(), "Hello", "en-IN", "hi-IN", TranslateOptions{})

	if res.Success {
		t.Fatal("Expected failure")
	}
	if res.Err != "Translation failed: HTTP 500" {
		t.Errorf("Unexpected error message: %q", res.Err)
	}
}

func TestDetectLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect-language" {
			t.Errorf("Expected path /detect-language, got %s", r.URL.Path)
		}
		if _, err := w.Write([]byte(`{"language_code":"ta-IN","script_code":"Taml"}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "sarvam-m")
	res := client.DetectLanguage(context.Background(), "வணக்கம்")

	if !res.Success {
		t.Fatalf("Expected success, got %q", res.Err)
	}
	if res.Value != "ta-IN" {
		t.Errorf("Expected detected code ta-IN, got %q", res.Value)
	}
}

func TestDetectLanguageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		if _, err := w.Write([]byte(`{"error":{"message":"invalid api key"}}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "sarvam-m")
	res := client.DetectLanguage(context.Background(), "hello")

	if res.Success {
		t.Fatal("Expected failure")
	}
	if res.Err != "Detection failed: invalid api key" {
		t.Errorf("Unexpected error message: %q", res.Err)
	}
}
