package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/internal/assistant"
	"executive-assistant-ai/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Briefing(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates the HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
