package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLookupFormatsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected path /search, got %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-KEY"); got != "skey" {
			t.Errorf("Expected API key header, got %q", got)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req["q"] != "go generics" {
			t.Errorf("Expected query in body, got %v", req["q"])
		}
		if _, err := w.Write([]byte(`{"organic":[
			{"title": "First", "link": "https://a.example", "snippet": "about first"},
			{"title": "Second", "link": "https://b.example", "snippet": ""}
		]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "skey", 5)
	got := client.Lookup(context.Background(), "go generics")

	if !strings.HasPrefix(got, "🔍 **Top results for \"go generics\":**") {
		t.Errorf("Expected header, got %q", got)
	}
	if !strings.Contains(got, "- **[First](https://a.example)**") {
		t.Errorf("Expected linked title, got %q", got)
	}
	if !strings.Contains(got, "*about first*") {
		t.Errorf("Expected italic snippet, got %q", got)
	}
	if !strings.Contains(got, "- **[Second](https://b.example)**") {
		t.Errorf("Expected second result, got %q", got)
	}
}

func TestLookupCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(`{"organic":[
			{"title": "A", "link": "l1"},
			{"title": "B", "link": "l2"},
			{"title": "C", "link": "l3"}
		]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "skey", 2)
	got := client.Lookup(context.Background(), "anything")

	if strings.Contains(got, "[C]") {
		t.Errorf("Expected results capped at 2, got %q", got)
	}
	if !strings.Contains(got, "[A]") || !strings.Contains(got, "[B]") {
		t.Errorf("Expected first two results, got %q", got)
	}
}

func TestLookupNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(`{"organic":[]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "skey", 5)
	got := client.Lookup(context.Background(), "nothing here")
	if !strings.Contains(got, `I couldn't find any results for "nothing here"`) {
		t.Errorf("Expected empty-result message, got %q", got)
	}
}

func TestLookupProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "skey", 5)
	got := client.Lookup(context.Background(), "query")
	if !strings.Contains(got, "failed") {
		t.Errorf("Expected failure text, got %q", got)
	}
}

func TestLookupDisabledWithoutKey(t *testing.T) {
	client := NewClient("http://unused.invalid", "", 5)
	got := client.Lookup(context.Background(), "query")
	if !strings.Contains(got, "not configured") {
		t.Errorf("Expected disabled message, got %q", got)
	}
}

func TestLookupEmptyQuery(t *testing.T) {
	client := NewClient("http://unused.invalid", "skey", 5)
	got := client.Lookup(context.Background(), "  ")
	if !strings.Contains(got, "what you want me to search for") {
		t.Errorf("Expected usage hint, got %q", got)
	}
}
