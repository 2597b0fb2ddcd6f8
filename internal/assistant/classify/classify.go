// Package classify assigns an intent label and heuristic confidence to raw
// request text using keyword checks. It is the model-free classification
// path, used when no language-model output is available or usable.
package classify

import (
	"strings"

	"executive-assistant-ai/internal/model"
)

// Category keyword sets, evaluated in this fixed order. Checks are
// non-exclusive: a later category that also matches overwrites the intent and
// confidence set by an earlier one, so a multi-keyword sentence resolves to
// the last matching category in the checklist.
var categories = []struct {
	intent     string
	confidence float64
	keywords   []string
}{
	{model.IntentScheduleMeeting, 0.8, []string{"schedule", "meeting", "book", "meet with"}},
	{model.IntentSendEmail, 0.7, []string{"email", "mail", "message"}},
	{model.IntentCreateTask, 0.7, []string{"task", "todo", "to-do", "remind me"}},
	{model.IntentCheckAvailability, 0.7, []string{"availability", "available", "free time", "busy", "calendar"}},
}

// GeneralConfidence is assigned when no category keyword matches.
const GeneralConfidence = 0.6

// Result is the classification outcome. Matched lists every category whose
// keywords appeared, in check order; Intent reflects only the last of them.
type Result struct {
	Intent     string
	Confidence float64
	Matched    []string
}

// Classify assigns an intent to the input text.
func Classify(input string) Result {
	lower := strings.ToLower(input)

	res := Result{Intent: model.IntentGeneral, Confidence: GeneralConfidence}
	for _, cat := range categories {
		if containsAny(lower, cat.keywords) {
			res.Intent = cat.intent
			res.Confidence = cat.confidence
			res.Matched = append(res.Matched, cat.intent)
		}
	}
	return res
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
