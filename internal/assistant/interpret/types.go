package interpret

import "executive-assistant-ai/internal/model"

// Tier identifies which fallback state produced a response.
type Tier int

const (
	// TierStructured means the model returned parseable JSON.
	TierStructured Tier = iota
	// TierHeuristicText means the model was reachable but its output was not
	// valid JSON; the keyword pipeline produced the response.
	TierHeuristicText
	// TierStaticFallback means no model call was attempted at all.
	TierStaticFallback
)

func (t Tier) String() string {
	switch t {
	case TierStructured:
		return "structured"
	case TierHeuristicText:
		return "heuristic_text"
	default:
		return "static_fallback"
	}
}

// Outcome pairs the response with the tier that produced it. The tier is the
// explicit discriminant of the fallback chain; callers never have to infer it
// from response fields.
type Outcome struct {
	Tier     Tier
	Response model.AssistantResponse
}

// modelResponse is the loose JSON contract the language model is prompted to
// follow. Pointer fields distinguish "absent" from zero for defaulting.
type modelResponse struct {
	Intent     string                 `json:"intent"`
	Confidence *float64               `json:"confidence"`
	Response   string                 `json:"response"`
	Actions    []rawAction            `json:"actions"`
	Context    map[string]interface{} `json:"context"`
}

// rawAction is an action as emitted by the model, before parameter typing.
type rawAction struct {
	Type       string                 `json:"type"`
	Parameters map[string]interface{} `json:"parameters"`
	Priority   *int                   `json:"priority"`
}
