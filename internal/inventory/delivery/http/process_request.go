package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "inventory.http.processListReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processGrantReq binds the grant request body.
func (h *handler) processGrantReq(c *gin.Context) (grantReq, error) {
	var req grantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "inventory.http.processGrantReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}
