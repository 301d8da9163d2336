package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
	"smartmeet/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates an account and returns a session token with the user profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Login godoc
// @Summary     Login with email and password
// @Description Authenticates and returns a session token with the user profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// GoogleLogin godoc
// @Summary     Login with a Google ID token
// @Description Verifies the Google ID token, creating the account on first sight.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body googleLoginReq true "Google ID token"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/google [POST]
func (h *handler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGoogleLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GoogleLogin(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GoogleLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Me godoc
// @Summary     Get the authenticated user's profile
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Me(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// UpdateMe godoc
// @Summary     Update the authenticated user's profile
// @Description Partial update: omitted fields keep their current value.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateMeReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/auth/me [PATCH]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateMeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateMe(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateMe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output))
}
