package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/internal/model"
)

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scopeFromQuery builds the request scope for GET endpoints.
func scopeFromQuery(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.Query("userId")}
}
