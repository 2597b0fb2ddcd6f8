package collaborator

import (
	"context"

	"executive-assistant-ai/pkg/gemini"
)

// GeminiModel adapts the Gemini client to the LanguageModel interface.
type GeminiModel struct {
	client *gemini.Client
}

// NewGeminiModel wraps a configured Gemini client.
func NewGeminiModel(client *gemini.Client) *GeminiModel {
	return &GeminiModel{client: client}
}

func (g *GeminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.client.GenerateText(ctx, prompt)
}
