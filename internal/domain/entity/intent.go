package entity

// IntentType is one of the six structurally distinct renderings of a page.
type IntentType string

const (
	IntentDirect        IntentType = "direct"
	IntentLocal         IntentType = "local"
	IntentCategory      IntentType = "category"
	IntentBrandedLocal  IntentType = "branded_local"
	IntentServiceUrgent IntentType = "service_urgent"
	IntentCompetitive   IntentType = "competitive"
)

// AllIntents is the canonical generation order.
var AllIntents = []IntentType{
	IntentDirect,
	IntentLocal,
	IntentCategory,
	IntentBrandedLocal,
	IntentServiceUrgent,
	IntentCompetitive,
}

// IsValid reports whether t names a known intent.
func (t IntentType) IsValid() bool {
	for _, intent := range AllIntents {
		if intent == t {
			return true
		}
	}

	return false
}

// ParseIntent returns the intent for s, or false when unknown. Hyphenated
// spellings ("branded-local") are accepted.
func ParseIntent(s string) (IntentType, bool) {
	normalized := IntentType(replaceHyphens(s))
	if normalized.IsValid() {
		return normalized, true
	}

	return "", false
}

func replaceHyphens(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}

	return string(out)
}
