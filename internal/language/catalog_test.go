package language

import (
	"strings"
	"testing"

	"github.com/Jiyan009/Mufasa-AI/internal/domain"
)

func TestOptionsStableOrderDefaultFirst(t *testing.T) {
	opts := Options()
	if len(opts) != 11 {
		t.Fatalf("Expected 11 languages, got %d", len(opts))
	}
	if opts[0].Code != DefaultCode {
		t.Errorf("Expected default language first, got %s", opts[0].Code)
	}
	for i, o := range opts {
		if o.Name == "" || o.Code == "" {
			t.Errorf("Option %d has empty fields: %+v", i, o)
		}
		if !Supported(o.Code) {
			t.Errorf("Option %d code %s not in catalog", i, o.Code)
		}
	}

	// Order must be deterministic across calls.
	again := Options()
	for i := range opts {
		if opts[i] != again[i] {
			t.Fatalf("Option order not stable at index %d: %v vs %v", i, opts[i], again[i])
		}
	}
}

func TestSupported(t *testing.T) {
	for _, code := range []string{"en-IN", "hi-IN", "bn-IN", "gu-IN", "kn-IN", "ml-IN", "mr-IN", "od-IN", "pa-IN", "ta-IN", "te-IN"} {
		if !Supported(code) {
			t.Errorf("Expected %s to be supported", code)
		}
	}
	for _, code := range []string{"fr-FR", "en-US", "", "hi"} {
		if Supported(code) {
			t.Errorf("Expected %s to be unsupported", code)
		}
	}
}

func TestLookupsFallBackToDefault(t *testing.T) {
	if got := Name("xx-XX"); got != Name(DefaultCode) {
		t.Errorf("Expected default name for unknown code, got %q", got)
	}
	if got := Placeholder(""); got != Placeholder(DefaultCode) {
		t.Errorf("Expected default placeholder for empty code, got %q", got)
	}
	if got := ThinkingMessage("zz"); got != ThinkingMessage(DefaultCode) {
		t.Errorf("Expected default thinking message for unknown code, got %q", got)
	}
	if got := WelcomeMessage("zz"); got != WelcomeMessage(DefaultCode) {
		t.Errorf("Expected default welcome message for unknown code, got %q", got)
	}
}

func TestSystemMessage(t *testing.T) {
	msg := SystemMessage("hi-IN")
	if msg.Role != domain.RoleSystem {
		t.Errorf("Expected system role, got %s", msg.Role)
	}
	if !strings.Contains(msg.Content, "Mufasa") {
		t.Errorf("Expected identity content, got %q", msg.Content)
	}
	if !strings.Contains(msg.Content, "Respond in Hindi.") {
		t.Errorf("Expected Hindi response instruction, got %q", msg.Content)
	}

	fallback := SystemMessage("unknown")
	if fallback.Content != SystemMessage(DefaultCode).Content {
		t.Error("Expected fallback system message to match default language")
	}
}

func TestEveryEntryComplete(t *testing.T) {
	for code, e := range catalog {
		if e.name == "" || e.placeholder == "" || e.thinking == "" || e.welcome == "" || e.identity == "" {
			t.Errorf("Catalog entry %s has empty strings", code)
		}
	}
	if len(displayOrder) != len(catalog) {
		t.Errorf("Display order covers %d codes, catalog has %d", len(displayOrder), len(catalog))
	}
	for _, code := range displayOrder {
		if !Supported(code) {
			t.Errorf("Display order references unknown code %s", code)
		}
	}
}
