package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/internal/middleware"
)

// RegisterRoutes maps the proactive endpoints onto the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/run-action", mw.RateLimit(), h.RunAction)
	rg.GET("/jobs", mw.RateLimit(), h.ListJobs)
}
