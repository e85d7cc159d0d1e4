package http

import (
	"github.com/gin-gonic/gin"
)

// processWeekReq binds the week view query parameters.
func (h *handler) processWeekReq(c *gin.Context) (weekReq, error) {
	var req weekReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAdvanceReq binds the week paging request body.
func (h *handler) processAdvanceReq(c *gin.Context) (advanceReq, error) {
	var req advanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processOpenDayReq binds the day view request body.
func (h *handler) processOpenDayReq(c *gin.Context) (openDayReq, error) {
	var req openDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
