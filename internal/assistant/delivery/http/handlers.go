package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant-ai/pkg/response"
)

// Process godoc
// @Summary     Process a natural-language request
// @Description Classifies the request's intent, extracts action parameters, and returns a response with the derived action list. Always answers 200 with a valid (possibly degraded) response object.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Request text with optional context"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.ProcessRequest(ctx, req.scope(), req.toInput())

	response.OK(c, h.newProcessResp(output))
}

// Briefing godoc
// @Summary     Generate the daily briefing
// @Description Assembles today's meetings, priority tasks, and suggestions into a plain-text briefing.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Success     200 {object} briefingResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/briefing [GET]
func (h *handler) Briefing(c *gin.Context) {
	ctx := c.Request.Context()

	text, err := h.uc.GenerateBriefing(ctx, scopeFromQuery(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateBriefing: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newBriefingResp(text))
}
