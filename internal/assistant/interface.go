package assistant

import (
	"context"

	"executive-assistant-ai/internal/model"
)

type UseCase interface {
	// ProcessRequest turns a free-text request into a typed intent, a
	// confidence score, and an action list. It never returns an error:
	// every failure path degrades to a valid response object.
	ProcessRequest(ctx context.Context, sc model.Scope, input ProcessInput) model.AssistantResponse

	// GenerateBriefing assembles the daily briefing from whatever
	// collaborators are configured and renders it as plain text.
	GenerateBriefing(ctx context.Context, sc model.Scope) (string, error)
}
