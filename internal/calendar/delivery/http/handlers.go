package http

import (
	"github.com/gin-gonic/gin"

	"team-calendar/internal/middleware"
	"team-calendar/pkg/response"
)

// Members godoc
// @Summary     List team members
// @Description Returns the schedulable roster with display colors.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} membersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/members [GET]
func (h *handler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Members(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Members: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMembersResp(output))
}

// Week godoc
// @Summary     Week availability view
// @Description Fetches the active week's availability grouped by day. The
// @Description selector and timezone query parameters retarget the view.
// @Tags        Calendar
// @Produce     json
// @Param       selector query string false "Member id or 'all'"
// @Param       timezone query string false "IANA timezone name"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Member not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.WeekView(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.WeekView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// Advance godoc
// @Summary     Page the week
// @Description Moves the active week forward or back by seven days and
// @Description returns the refetched view.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body advanceReq true "Paging direction"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/week/advance [POST]
func (h *handler) Advance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdvanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Advance(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Advance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// OpenDay godoc
// @Summary     Open the day detail view
// @Description Lays out one day of the loaded week as 24 hourly rows and
// @Description starts refreshing the current-time marker every minute.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body openDayReq true "Day to open"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/day [POST]
func (h *handler) OpenDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OpenDay(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(output))
}

// CurrentDay godoc
// @Summary     Current day detail view
// @Description Returns the open day view with its latest current-time marker.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} dayResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "No day view open"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/day [GET]
func (h *handler) CurrentDay(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CurrentDay(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CurrentDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(output))
}

// CloseDay godoc
// @Summary     Close the day detail view
// @Description Stops the current-time marker refresher.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/day [DELETE]
func (h *handler) CloseDay(c *gin.Context) {
	h.uc.CloseDay(c.Request.Context())
	response.OK(c, nil)
}
