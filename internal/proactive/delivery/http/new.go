package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/internal/proactive"
	"executive-assistant-ai/pkg/log"
)

// Handler is the public interface for the proactive HTTP delivery layer.
type Handler interface {
	RunAction(c *gin.Context)
	ListJobs(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc proactive.UseCase
}

// New creates the HTTP handler for the proactive domain.
func New(l log.Logger, uc proactive.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
