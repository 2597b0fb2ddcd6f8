// Package interpret turns raw language-model output into the canonical
// AssistantResponse through a three-tier fallback chain: structured JSON,
// heuristic text classification, static fallback.
package interpret

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"executive-assistant-ai/internal/assistant/classify"
	"executive-assistant-ai/internal/assistant/extract"
	"executive-assistant-ai/internal/model"
	pkgLog "executive-assistant-ai/pkg/log"
)

// Greedy match: the model tends to wrap its JSON in prose.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Interpreter maps model output onto response tiers.
type Interpreter struct {
	l         pkgLog.Logger
	extractor *extract.Extractor
}

// New creates an Interpreter.
func New(l pkgLog.Logger) *Interpreter {
	return &Interpreter{
		l:         l,
		extractor: extract.New(),
	}
}

// Interpret produces the canonical response for one request.
//
// modelAttempted=false means no model call was made at all (client missing or
// unreachable): the input is still classified by keyword, and only when no
// category matches does the static fallback answer. Otherwise the structured
// tier is tried first and any parse failure drops to the heuristic tier. The
// returned response always satisfies 0 <= confidence <= 1 and carries a
// non-nil actions slice.
func (i *Interpreter) Interpret(ctx context.Context, input, modelOutput string, modelAttempted bool) Outcome {
	if !modelAttempted {
		if resp := i.heuristic(input, ""); resp.Intent != DefaultIntent {
			return Outcome{Tier: TierHeuristicText, Response: resp}
		}
		return Outcome{Tier: TierStaticFallback, Response: i.staticFallback()}
	}

	if resp, ok := i.parseStructured(ctx, modelOutput); ok {
		return Outcome{Tier: TierStructured, Response: resp}
	}

	i.l.Warnf(ctx, "interpret: model output not parseable as JSON, using heuristic classification")
	return Outcome{Tier: TierHeuristicText, Response: i.heuristic(input, modelOutput)}
}

// parseStructured attempts the structured tier: find a JSON object in the
// model output, decode it, and apply per-field defaults.
func (i *Interpreter) parseStructured(ctx context.Context, modelOutput string) (model.AssistantResponse, bool) {
	raw := stripCodeFences(modelOutput)

	jsonText := jsonObjectPattern.FindString(raw)
	if jsonText == "" {
		return model.AssistantResponse{}, false
	}

	var mr modelResponse
	if err := json.Unmarshal([]byte(jsonText), &mr); err != nil {
		i.l.Warnf(ctx, "interpret: JSON decode failed: %v", err)
		return model.AssistantResponse{}, false
	}

	resp := model.AssistantResponse{
		Intent:     mr.Intent,
		Confidence: DefaultConfidence,
		Response:   mr.Response,
		Actions:    []model.Action{},
		Context:    mr.Context,
	}
	if resp.Intent == "" {
		resp.Intent = DefaultIntent
	}
	if mr.Confidence != nil {
		resp.Confidence = clamp01(*mr.Confidence)
	}
	if resp.Response == "" {
		resp.Response = modelOutput
	}
	if resp.Context == nil {
		resp.Context = map[string]interface{}{}
	}

	for _, ra := range mr.Actions {
		action, err := i.buildAction(ra)
		if err != nil {
			i.l.Warnf(ctx, "interpret: skipping model action %q: %v", ra.Type, err)
			continue
		}
		resp.Actions = append(resp.Actions, action)
	}

	return resp, true
}

// heuristic runs the keyword pipeline over the raw input. The model's text,
// if any, is echoed as the natural-language response; its content is
// otherwise ignored.
func (i *Interpreter) heuristic(input, modelOutput string) model.AssistantResponse {
	cls := classify.Classify(input)

	actions := make([]model.Action, 0, len(cls.Matched))
	for _, intent := range cls.Matched {
		if a, ok := i.syntheticAction(intent, input); ok {
			actions = append(actions, a)
		}
	}

	responseText := strings.TrimSpace(modelOutput)
	if responseText == "" {
		responseText = heuristicResponses[cls.Intent]
	}

	return model.AssistantResponse{
		Intent:     cls.Intent,
		Confidence: cls.Confidence,
		Response:   responseText,
		Actions:    actions,
		Context:    map[string]interface{}{},
	}
}

// staticFallback is the response when no model call was attempted.
func (i *Interpreter) staticFallback() model.AssistantResponse {
	return model.AssistantResponse{
		Intent:     DefaultIntent,
		Confidence: FallbackConfidence,
		Response:   FallbackResponse,
		Actions:    []model.Action{},
		Context:    map[string]interface{}{"fallback": true},
	}
}

// syntheticAction builds at most one action for a matched category.
func (i *Interpreter) syntheticAction(intent, input string) (model.Action, bool) {
	var (
		a   model.Action
		err error
	)
	switch intent {
	case model.IntentScheduleMeeting:
		a, err = model.NewAction(model.ActionScheduleMeeting, i.extractor.Meeting(input), DefaultActionPriority)
	case model.IntentSendEmail:
		a, err = model.NewAction(model.ActionSendEmail, i.extractor.Email(input), DefaultActionPriority)
	case model.IntentCreateTask:
		a, err = model.NewAction(model.ActionCreateTask, i.extractor.Task(input), DefaultActionPriority)
	case model.IntentCheckAvailability:
		a, err = model.NewAction(model.ActionSearchCalendar, i.extractor.Search(input), DefaultActionPriority)
	default:
		return model.Action{}, false
	}
	if err != nil {
		return model.Action{}, false
	}
	return a, true
}

// buildAction types a model-emitted action's loose parameter map into the
// closed per-type parameter structs.
func (i *Interpreter) buildAction(ra rawAction) (model.Action, error) {
	priority := DefaultActionPriority
	if ra.Priority != nil {
		priority = *ra.Priority
	}

	t := model.ActionType(ra.Type)
	var params model.ActionParams
	switch t {
	case model.ActionScheduleMeeting, model.ActionUpdateCalendar:
		params = model.MeetingParams{
			Title:    stringField(ra.Parameters, "title"),
			Time:     stringField(ra.Parameters, "time"),
			Date:     stringField(ra.Parameters, "date"),
			Duration: intField(ra.Parameters, "duration"),
		}
	case model.ActionSendEmail:
		params = model.EmailParams{
			To:      stringField(ra.Parameters, "to"),
			CC:      stringSliceField(ra.Parameters, "cc"),
			Subject: stringField(ra.Parameters, "subject"),
		}
	case model.ActionCreateTask:
		params = model.TaskParams{
			Title:    stringField(ra.Parameters, "title"),
			Priority: stringField(ra.Parameters, "priority"),
			DueDate:  stringField(ra.Parameters, "dueDate"),
		}
	case model.ActionSetReminder:
		params = model.ReminderParams{
			Message: stringField(ra.Parameters, "message"),
			Time:    stringField(ra.Parameters, "time"),
		}
	case model.ActionSearchCalendar:
		params = model.SearchParams{TimeRange: stringField(ra.Parameters, "timeRange")}
	case model.ActionGenerateBriefing:
		params = model.BriefingParams{}
	default:
		return model.NewAction(t, nil, priority) // NewAction rejects unknown types
	}

	return model.NewAction(t, params, priority)
}

// stripCodeFences removes a surrounding markdown code block, which models
// frequently wrap JSON in despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func stringSliceField(m map[string]interface{}, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intField(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
