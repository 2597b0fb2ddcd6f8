package usecase

import (
	"context"

	"executive-assistant-ai/internal/assistant"
	"executive-assistant-ai/internal/model"
)

// ProcessRequest runs the interpretation pipeline: one bounded call to the
// language model, then tiered interpretation of whatever came back. A model
// that is missing or unreachable downgrades the tier; it never surfaces an
// error to the caller.
func (uc *usecase) ProcessRequest(ctx context.Context, sc model.Scope, input assistant.ProcessInput) model.AssistantResponse {
	modelAttempted := uc.llm != nil
	var modelOutput string

	if modelAttempted {
		callCtx, cancel := context.WithTimeout(ctx, uc.requestTimeout)
		defer cancel()

		out, err := uc.llm.GenerateText(callCtx, buildPrompt(input))
		if err != nil {
			uc.l.Warnf(ctx, "assistant: model call failed, falling back: %v", err)
			modelAttempted = false
		} else {
			modelOutput = out
		}
	}

	outcome := uc.interpreter.Interpret(ctx, input.Input, modelOutput, modelAttempted)
	uc.l.Infof(ctx, "assistant: user=%s tier=%s intent=%s confidence=%.2f actions=%d",
		sc.UserID, outcome.Tier, outcome.Response.Intent, outcome.Response.Confidence, len(outcome.Response.Actions))

	return outcome.Response
}
