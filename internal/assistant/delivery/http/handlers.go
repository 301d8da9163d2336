package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
	"smartmeet/pkg/response"
)

// Process godoc
// @Summary     Process a voice transcript
// @Description Classifies the transcript, schedules a meeting or fetches the calendar, and returns a spoken reply.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body processReq true "Voice transcript"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// History godoc
// @Summary     List recent voice commands
// @Description Returns the caller's voice command audit entries, newest first.
// @Tags        Voice
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Page size (default 20, max 100)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
