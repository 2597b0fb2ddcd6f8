package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints onto the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/process", mw.RateLimit(), h.Process)
	rg.GET("/briefing", mw.RateLimit(), h.Briefing)
}
