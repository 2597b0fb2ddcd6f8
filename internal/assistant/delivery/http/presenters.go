package http

import (
	"strings"
	"time"

	"executive-assistant-ai/internal/assistant"
	"executive-assistant-ai/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Input   string                 `json:"input"   binding:"required"`
	Context map[string]interface{} `json:"context"`
	UserID  string                 `json:"userId"`
}

func (r processReq) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return assistant.ErrEmptyInput
	}
	return nil
}

func (r processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{
		Input:   r.Input,
		Context: r.Context,
	}
}

func (r processReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type actionResp struct {
	Type       string             `json:"type"`
	Parameters model.ActionParams `json:"parameters"`
	Priority   int                `json:"priority"`
}

type processResp struct {
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Response   string                 `json:"response"`
	Actions    []actionResp           `json:"actions"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

func (h handler) newProcessResp(out model.AssistantResponse) processResp {
	actions := make([]actionResp, 0, len(out.Actions))
	for _, a := range out.Actions {
		actions = append(actions, actionResp{
			Type:       string(a.Type),
			Parameters: a.Parameters,
			Priority:   a.Priority,
		})
	}
	return processResp{
		Intent:     out.Intent,
		Confidence: out.Confidence,
		Response:   out.Response,
		Actions:    actions,
		Context:    out.Context,
	}
}

type briefingResp struct {
	Briefing    string `json:"briefing"`
	GeneratedAt string `json:"generatedAt"`
}

func (h handler) newBriefingResp(text string) briefingResp {
	return briefingResp{
		Briefing:    text,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
}
