package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
	"smartmeet/pkg/response"
)

// List godoc
// @Summary     List the owner's meetings
// @Tags        Meetings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Schedule a meeting
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Meeting data"
// @Success     201 {object} meetingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newMeetingResp(output))
}

// Update godoc
// @Summary     Update a meeting
// @Description Partial update: omitted fields keep their current value.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Meeting ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} meetingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeetingResp(output))
}

// Delete godoc
// @Summary     Delete a meeting
// @Tags        Meetings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Meeting ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/meetings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Deleted: id})
}

// Events godoc
// @Summary     List calendar events
// @Description Returns the owner's meetings from seven days back, ascending.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} eventsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Events(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Events: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventsResp(output))
}

// Sync godoc
// @Summary     Sync meetings to Google Calendar
// @Description Pushes unsynced upcoming meetings to Google Calendar.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/calendar/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Sync(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncResp(output))
}
