package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"executive-assistant-ai/pkg/response"
)

var errMissingAction = errors.New("action name is required")

type runActionReq struct {
	Action string `json:"action" binding:"required"`
}

type runActionResp struct {
	Action    string `json:"action"`
	Triggered bool   `json:"triggered"`
}

type listJobsResp struct {
	Jobs []string `json:"jobs"`
}

// RunAction godoc
// @Summary     Trigger a scheduled job manually
// @Description Fires a named proactive job immediately, outside its cron schedule. Fire-and-forget: the response reports only whether the name matched a registered job.
// @Tags        Proactive
// @Accept      json
// @Produce     json
// @Param       body body runActionReq true "Job name"
// @Success     200 {object} runActionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/proactive/run-action [POST]
func (h *handler) RunAction(c *gin.Context) {
	ctx := c.Request.Context()

	var req runActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if strings.TrimSpace(req.Action) == "" {
		response.Error(c, errMissingAction, nil)
		return
	}

	triggered := h.uc.RunAction(ctx, req.Action)
	if !triggered {
		h.l.Warnf(ctx, "proactive: manual trigger for unknown job %q", req.Action)
	}

	response.OK(c, runActionResp{
		Action:    req.Action,
		Triggered: triggered,
	})
}

// ListJobs godoc
// @Summary     List scheduled jobs
// @Description Lists the names of all registered proactive jobs.
// @Tags        Proactive
// @Produce     json
// @Success     200 {object} listJobsResp
// @Router      /api/v1/proactive/jobs [GET]
func (h *handler) ListJobs(c *gin.Context) {
	response.OK(c, listJobsResp{Jobs: h.uc.JobNames()})
}
