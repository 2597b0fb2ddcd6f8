package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"executive-assistant-ai/internal/assistant"
)

const promptHeader = `You are an executive assistant backend. Interpret the user's request and respond with ONLY a JSON object, no prose, matching this shape:

{
  "intent": "schedule_meeting" | "send_email" | "create_task" | "check_availability" | "general",
  "confidence": <number between 0 and 1>,
  "response": "<short natural-language reply for the user>",
  "actions": [
    {
      "type": "schedule_meeting" | "send_email" | "create_task" | "set_reminder" | "update_calendar" | "search_calendar" | "generate_briefing",
      "parameters": { ... },
      "priority": <integer 1-10>
    }
  ],
  "context": { ... }
}

Parameter shapes: schedule_meeting expects title/time/date/duration (minutes); send_email expects to/cc/subject; create_task expects title/priority/dueDate.`

// buildPrompt frames the user input and any caller-supplied context for the
// language model, pinning the output to the JSON contract above.
func buildPrompt(input assistant.ProcessInput) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)

	if len(input.Context) > 0 {
		if raw, err := json.Marshal(input.Context); err == nil {
			fmt.Fprintf(&sb, "\n\nConversation context: %s", raw)
		}
	}

	fmt.Fprintf(&sb, "\n\nUser request: %s", input.Input)
	return sb.String()
}
