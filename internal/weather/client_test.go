package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLookupFormatsConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("Expected path /weather, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "Guwahati" {
			t.Errorf("Expected city query, got %q", q.Get("q"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("Expected metric units, got %q", q.Get("units"))
		}
		if q.Get("appid") != "wkey" {
			t.Errorf("Expected api key in query, got %q", q.Get("appid"))
		}
		if _, err := w.Write([]byte(`{
			"name": "Guwahati",
			"weather": [{"description": "light rain"}],
			"main": {"temp": 28.4, "feels_like": 32.1, "humidity": 84},
			"wind": {"speed": 3.6}
		}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "wkey")
	got := client.Lookup(context.Background(), "Guwahati")

	for _, want := range []string{
		"🌤️ **Weather in Guwahati**",
		"Conditions: light rain",
		"Temperature: 28.4°C (feels like 32.1°C)",
		"Humidity: 84%",
		"Wind: 3.6 m/s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}
}

func TestLookupUnknownCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "wkey")
	got := client.Lookup(context.Background(), "Atlantis")
	if !strings.Contains(got, `I couldn't find a city called "Atlantis"`) {
		t.Errorf("Expected not-found message, got %q", got)
	}
}

func TestLookupProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "wkey")
	got := client.Lookup(context.Background(), "Pune")
	if !strings.Contains(got, "couldn't check the weather for Pune") {
		t.Errorf("Expected failure text, got %q", got)
	}
}

func TestLookupDisabledWithoutKey(t *testing.T) {
	client := NewClient("http://unused.invalid", "")
	got := client.Lookup(context.Background(), "Delhi")
	if !strings.Contains(got, "not configured") {
		t.Errorf("Expected disabled message, got %q", got)
	}
}

func TestLookupEmptyCity(t *testing.T) {
	client := NewClient("http://unused.invalid", "wkey")
	got := client.Lookup(context.Background(), "   ")
	if !strings.Contains(got, "which city") {
		t.Errorf("Expected usage hint, got %q", got)
	}
}
