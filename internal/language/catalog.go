// Package language provides the static catalog of supported languages and
// their UI prompt strings. All lookups fail soft: an unknown code resolves
// to the default language instead of erroring.
package language

import (
	"github.com/Jiyan009/Mufasa-AI/internal/domain"
)

// entry holds the per-language display strings.
type entry struct {
	name        string
	placeholder string
	thinking    string
	welcome     string
	identity    string
}

// DefaultCode is the language used when no selection exists or a code is
// not in the catalog.
const DefaultCode = domain.DefaultLanguage

var catalog = map[string]entry{
	"en-IN": {
		name:        "English",
		placeholder: "Ask Mufasa anything...",
		thinking:    "Mufasa is thinking...",
		welcome:     "Welcome! I'm Mufasa, your wise AI companion. Ask me anything!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in English.",
	},
	"hi-IN": {
		name:        "हिंदी (Hindi)",
		placeholder: "मुफासा से कुछ भी पूछें...",
		thinking:    "मुफासा सोच रहा है...",
		welcome:     "स्वागत है! मैं मुफासा हूँ, आपका बुद्धिमान AI साथी। मुझसे कुछ भी पूछें!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Hindi.",
	},
	"bn-IN": {
		name:        "বাংলা (Bengali)",
		placeholder: "মুফাসাকে কিছু জিজ্ঞাসা করুন...",
		thinking:    "মুফাসা ভাবছে...",
		welcome:     "স্বাগতম! আমি মুফাসা, আপনার জ্ঞানী AI সঙ্গী। আমাকে কিছু জিজ্ঞাসা করুন!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Bengali.",
	},
	"gu-IN": {
		name:        "ગુજરાતી (Gujarati)",
		placeholder: "મુફાસાને કંઈપણ પૂછો...",
		thinking:    "મુફાસા વિચારી રહ્યો છે...",
		welcome:     "સ્વાગત છે! હું મુફાસા છું, તમારો શાણો AI સાથી. મને કંઈપણ પૂછો!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Gujarati.",
	},
	"kn-IN": {
		name:        "ಕನ್ನಡ (Kannada)",
		placeholder: "ಮುಫಾಸಾನನ್ನು ಏನು ಬೇಕಾದರೂ ಕೇಳಿ...",
		thinking:    "ಮುಫಾಸಾ ಯೋಚಿಸುತ್ತಿದ್ದಾನೆ...",
		welcome:     "ಸ್ವಾಗತ! ನಾನು ಮುಫಾಸಾ, ನಿಮ್ಮ ಜಾಣ AI ಸಂಗಾತಿ. ನನ್ನನ್ನು ಏನು ಬೇಕಾದರೂ ಕೇಳಿ!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Kannada.",
	},
	"ml-IN": {
		name:        "മലയാളം (Malayalam)",
		placeholder: "മുഫാസയോട് എന്തും ചോദിക്കൂ...",
		thinking:    "മുഫാസ ചിന്തിക്കുകയാണ്...",
		welcome:     "സ്വാഗതം! ഞാൻ മുഫാസ, നിങ്ങളുടെ ജ്ഞാനിയായ AI കൂട്ടുകാരൻ. എന്നോട് എന്തും ചോദിക്കൂ!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Malayalam.",
	},
	"mr-IN": {
		name:        "मराठी (Marathi)",
		placeholder: "मुफासाला काहीही विचारा...",
		thinking:    "मुफासा विचार करत आहे...",
		welcome:     "स्वागत आहे! मी मुफासा, तुमचा शहाणा AI सोबती. मला काहीही विचारा!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Marathi.",
	},
	"od-IN": {
		name:        "ଓଡ଼ିଆ (Odia)",
		placeholder: "ମୁଫାସାଙ୍କୁ କିଛି ବି ପଚାରନ୍ତୁ...",
		thinking:    "ମୁଫାସା ଭାବୁଛି...",
		welcome:     "ସ୍ୱାଗତ! ମୁଁ ମୁଫାସା, ଆପଣଙ୍କର ଜ୍ଞାନୀ AI ସାଥୀ। ମୋତେ କିଛି ବି ପଚାରନ୍ତୁ!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Odia.",
	},
	"pa-IN": {
		name:        "ਪੰਜਾਬੀ (Punjabi)",
		placeholder: "ਮੁਫਾਸਾ ਨੂੰ ਕੁਝ ਵੀ ਪੁੱਛੋ...",
		thinking:    "ਮੁਫਾਸਾ ਸੋਚ ਰਿਹਾ ਹੈ...",
		welcome:     "ਜੀ ਆਇਆਂ ਨੂੰ! ਮੈਂ ਮੁਫਾਸਾ ਹਾਂ, ਤੁਹਾਡਾ ਸਿਆਣਾ AI ਸਾਥੀ। ਮੈਨੂੰ ਕੁਝ ਵੀ ਪੁੱਛੋ!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Punjabi.",
	},
	"ta-IN": {
		name:        "தமிழ் (Tamil)",
		placeholder: "முஃபாசாவிடம் எதையும் கேளுங்கள்...",
		thinking:    "முஃபாசா யோசித்துக்கொண்டிருக்கிறார்...",
		welcome:     "வரவேற்கிறேன்! நான் முஃபாசா, உங்கள் ஞானமுள்ள AI துணை. என்னிடம் எதையும் கேளுங்கள்!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Tamil.",
	},
	"te-IN": {
		name:        "తెలుగు (Telugu)",
		placeholder: "ముఫాసాను ఏదైనా అడగండి...",
		thinking:    "ముఫాసా ఆలోచిస్తున్నాడు...",
		welcome:     "స్వాగతం! నేను ముఫాసా, మీ తెలివైన AI సహచరుడిని. నన్ను ఏదైనా అడగండి!",
		identity:    "You are Mufasa, a wise and friendly AI companion created by Jeet Borah. You answer helpfully, clearly and with warmth. Respond in Telugu.",
	},
}

// displayOrder keeps the selector stable, default first.
var displayOrder = []string{
	"en-IN", "hi-IN", "bn-IN", "gu-IN", "kn-IN", "ml-IN",
	"mr-IN", "od-IN", "pa-IN", "ta-IN", "te-IN",
}

// Option pairs a display name with its language code.
type Option struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Options returns the supported languages in stable display order.
func Options() []Option {
	opts := make([]Option, 0, len(displayOrder))
	for _, code := range displayOrder {
		opts = append(opts, Option{Name: catalog[code].name, Code: code})
	}
	return opts
}

// Supported reports whether code is in the catalog.
func Supported(code string) bool {
	_, ok := catalog[code]
	return ok
}

func lookup(code string) entry {
	if e, ok := catalog[code]; ok {
		return e
	}
	return catalog[DefaultCode]
}

// Name returns the display name for a language code.
func Name(code string) string {
	return lookup(code).name
}

// Placeholder returns the chat input placeholder for a language code.
func Placeholder(code string) string {
	return lookup(code).placeholder
}

// ThinkingMessage returns the in-flight loading text for a language code.
func ThinkingMessage(code string) string {
	return lookup(code).thinking
}

// WelcomeMessage returns the sidebar welcome text for a language code.
func WelcomeMessage(code string) string {
	return lookup(code).welcome
}

// SystemMessage builds the identity system message for a language code.
func SystemMessage(code string) domain.Message {
	return domain.Message{
		Role:    domain.RoleSystem,
		Content: lookup(code).identity,
	}
}
