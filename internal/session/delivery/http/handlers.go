package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "team-calendar/pkg/errors"
	"team-calendar/pkg/response"
)

// Me godoc
// @Summary     Session check
// @Description Returns the authenticated user, or a null user when no
// @Description backend session is active.
// @Tags        Session
// @Produce     json
// @Success     200 {object} meResp
// @Router      /api/v1/session/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Me(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newMeResp(output))
}

// Login godoc
// @Summary     Start login
// @Description Redirects to the backend's Google OAuth entry point. The
// @Description backend owns the whole token exchange.
// @Tags        Session
// @Success     307 "Temporary Redirect"
// @Router      /api/v1/session/login [GET]
func (h *handler) Login(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.uc.LoginURL())
}

// Logout godoc
// @Summary     Log out
// @Description Ends the backend session and clears the cached user.
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/session/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(502, "logout failed"))
		return
	}

	response.OK(c, nil)
}
