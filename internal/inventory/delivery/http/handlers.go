package http

import (
	"github.com/gin-gonic/gin"

	"play-economy/pkg/response"
)

// List godoc
// @Summary     List a user's inventory
// @Description Returns every item the user holds, with catalog name and description when known.
// @Tags        Inventory
// @Produce     json
// @Param       userId query string true "User ID"
// @Success     200 {array}  entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Grant godoc
// @Summary     Grant items to a user
// @Description Adds quantity of a catalog item to the user's inventory.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body grantReq true "Grant"
// @Success     200 {object} grantResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Grant(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGrantReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Grant(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Grant: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGrantResp(output))
}
