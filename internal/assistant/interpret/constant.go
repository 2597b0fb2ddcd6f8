package interpret

// Per-field defaults for the structured tier.
const (
	DefaultIntent     = "general"
	DefaultConfidence = 0.8
)

// FallbackConfidence is the confidence of the static fallback tier.
const FallbackConfidence = 0.5

// FallbackResponse is returned when no language model is configured or
// reachable.
const FallbackResponse = "I'm currently running in offline mode. I can still help you schedule meetings, send emails, and manage tasks - just tell me what you need."

// DefaultActionPriority is assigned to synthetic actions built by the
// heuristic tier and to model actions that omit a priority.
const DefaultActionPriority = 5

// Canned response texts for the heuristic tier, keyed by intent, used when
// the model produced no usable natural-language text to echo.
var heuristicResponses = map[string]string{
	"schedule_meeting":   "I'll help you schedule that meeting. Let me check the calendar.",
	"send_email":         "I'll prepare that email for you.",
	"create_task":        "I've noted that task for you.",
	"check_availability": "Let me look at the calendar for you.",
	"general":            "I'm your executive assistant. I can schedule meetings, send emails, create tasks, and keep an eye on your calendar. What would you like to do?",
}
