package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTemplate(t *testing.T) {
	question := "How often should I change the oil?"
	out := Compose(ContextMaintenance, question)

	assert.True(t, strings.HasPrefix(out, SystemPrompt))
	assert.Contains(t, out, "**USER QUESTION**: "+question)
	assert.True(t, strings.HasSuffix(out,
		"Please provide a detailed, structured response following the guidelines above."))
	assert.Contains(t, out, "Specific service intervals with km/time periods")
}

func TestComposeQuestionUnmodified(t *testing.T) {
	// The question passes through untouched, markup and all.
	question := `<b>weird</b> "question" with {json: true}`
	out := Compose(ContextGeneral, question)
	assert.Contains(t, out, "**USER QUESTION**: "+question+"\n\n")
}

func TestComposeUnknownLabelFallsBackToGeneral(t *testing.T) {
	got := Compose(Context("bogus"), "q")
	want := Compose(ContextGeneral, "q")
	assert.Equal(t, want, got)
}

func TestComposeEveryLabelHasGuidance(t *testing.T) {
	labels := []Context{
		ContextSafety, ContextMaintenance, ContextEngine, ContextFeatures,
		ContextTroubleshooting, ContextComparison, ContextGeneral,
	}
	for _, label := range labels {
		out := Compose(label, "q")
		assert.Contains(t, out, "**CONTEXT**", "label %s", label)
	}
}

func TestEnhanceRoutesThroughClassifier(t *testing.T) {
	out := Enhance("What safety features does it have?")
	assert.Contains(t, out, "5-Star Global NCAP rating (highlight this first)")
}
