package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds and validates the registration request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processGoogleLoginReq binds and validates the Google login request body.
func (h *handler) processGoogleLoginReq(c *gin.Context) (googleLoginReq, error) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateMeReq binds and validates the profile update request body.
func (h *handler) processUpdateMeReq(c *gin.Context) (updateMeReq, error) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
