package prompt

import "strings"

// Context labels a user message with the guidance block it should receive.
type Context string

const (
	ContextSafety          Context = "safety"
	ContextMaintenance     Context = "maintenance"
	ContextEngine          Context = "engine"
	ContextFeatures        Context = "features"
	ContextTroubleshooting Context = "troubleshooting"
	ContextComparison      Context = "comparison"
	ContextGeneral         Context = "general"
)

// rules are checked in order; the first keyword hit wins. The order matters:
// "what safety issues need fixing" is a safety question, not a troubleshooting
// one.
var rules = []struct {
	label    Context
	keywords []string
}{
	{ContextSafety, []string{"safety", "secure", "protection", "airbag"}},
	{ContextMaintenance, []string{"maintenance", "service", "schedule"}},
	{ContextEngine, []string{"engine", "performance", "power", "specifications"}},
	{ContextFeatures, []string{"features", "technology", "infotainment"}},
	{ContextTroubleshooting, []string{"problem", "issue", "trouble", "fix"}},
	{ContextComparison, []string{"compare", "vs", "difference", "better"}},
}

// Classify maps arbitrary user text to a context label. It never fails;
// unmatched text is general.
func Classify(text string) Context {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.label
			}
		}
	}
	return ContextGeneral
}
