package chat

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantCmd Command
		wantArg string
		wantOK  bool
	}{
		{"weather", "weather in Guwahati", CommandWeather, "Guwahati", true},
		{"weather mixed case", "Weather in Nagaon", CommandWeather, "Nagaon", true},
		{"weather upper case", "WEATHER IN Delhi", CommandWeather, "Delhi", true},
		{"search", "search for go generics", CommandSearch, "go generics", true},
		{"search mixed case", "Search for Sarvam AI", CommandSearch, "Sarvam AI", true},
		{"argument kept verbatim", "search for  spaced  words ", CommandSearch, "spaced  words", true},
		{"prefix not at start", "what is the weather in Pune", "", "", false},
		{"no trailing space", "weather inPune", "", "", false},
		{"plain chat", "tell me a story", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, arg, ok := ParseCommand(tt.prompt)
			if ok != tt.wantOK {
				t.Fatalf("ParseCommand(%q) ok = %v, want %v", tt.prompt, ok, tt.wantOK)
			}
			if cmd != tt.wantCmd {
				t.Errorf("ParseCommand(%q) cmd = %q, want %q", tt.prompt, cmd, tt.wantCmd)
			}
			if arg != tt.wantArg {
				t.Errorf("ParseCommand(%q) arg = %q, want %q", tt.prompt, arg, tt.wantArg)
			}
		})
	}
}

func TestParseCommandPrefixOnly(t *testing.T) {
	cmd, arg, ok := ParseCommand("weather in ")
	if !ok {
		t.Fatal("Expected bare prefix to dispatch")
	}
	if cmd != CommandWeather || arg != "" {
		t.Errorf("Expected weather command with empty argument, got %q %q", cmd, arg)
	}
}
