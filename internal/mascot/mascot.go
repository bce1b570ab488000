// Package mascot defines the tiger mascot state vocabulary and its
// presentation lookups. The state is UI feedback only, driven by the
// conversation turn pipeline.
package mascot

// State is a mascot display state.
type State string

const (
	Idle     State = "idle"
	Thinking State = "thinking"
	Happy    State = "happy"
	Excited  State = "excited"
	Sad      State = "sad"
	Confused State = "confused"
	// Celebrating is part of the vocabulary but is never emitted by the
	// turn pipeline. Kept so the presentation layer can render it if a
	// milestone event is ever added.
	Celebrating State = "celebrating"
)

var glyphs = map[State]string{
	Idle:        "🐯",
	Thinking:    "🤔🐯",
	Happy:       "🐯🐯",
	Excited:     "🤩🐯",
	Sad:         "🐯💧",
	Confused:    "😵🐯",
	Celebrating: "🥳🐯",
}

var animations = map[State]string{
	Idle:        "tiger-idle",
	Thinking:    "tiger-thinking",
	Happy:       "tiger-happy",
	Excited:     "tiger-excited",
	Sad:         "tiger-sad",
	Confused:    "tiger-confused",
	Celebrating: "tiger-celebrating",
}

// Valid reports whether s is a known mascot state.
func (s State) Valid() bool {
	_, ok := glyphs[s]
	return ok
}

// Glyph returns the display glyph for a state, falling back to idle.
func Glyph(s State) string {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return glyphs[Idle]
}

// AnimationClass returns the CSS animation class for a state, falling
// back to idle.
func AnimationClass(s State) string {
	if a, ok := animations[s]; ok {
		return a
	}
	return animations[Idle]
}
