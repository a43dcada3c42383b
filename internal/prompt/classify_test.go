package prompt

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Context
	}{
		{"safety keyword", "What safety features does it have?", ContextSafety},
		{"airbag keyword", "how many airbags", ContextSafety},
		{"case insensitive", "TELL ME ABOUT AIRBAG PROTECTION", ContextSafety},
		{"maintenance keyword", "what is the service schedule", ContextMaintenance},
		{"engine keyword", "engine specs please", ContextEngine},
		{"features keyword", "does the infotainment support carplay", ContextFeatures},
		{"troubleshooting keyword", "I have a problem with the AC", ContextTroubleshooting},
		{"comparison keyword", "nexon vs brezza", ContextComparison},
		{"no keyword", "tell me about the boot space", ContextGeneral},
		{"empty text", "", ContextGeneral},
		// Priority order: safety wins even when later families also match.
		{"safety beats maintenance", "is the service center safety checked", ContextSafety},
		{"safety beats engine", "airbag and engine performance", ContextSafety},
		{"maintenance beats engine", "service intervals for the engine", ContextMaintenance},
		{"engine beats comparison", "compare engine power", ContextEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
