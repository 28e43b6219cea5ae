// Package handlers maps HTTP requests onto the application services.  The
// handlers own no business logic: decode, delegate, encode.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// respondOK writes the success envelope.
func respondOK(c *gin.Context, data interface{}) {
	resp := common.NewSuccessResponse(data)
	resp.RequestID = c.GetString("request_id")
	c.JSON(http.StatusOK, resp)
}

// respondError maps an error onto the envelope using its AppError code, or
// 500 for foreign errors.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	msg := err.Error()
	if errors.IsServerError(code) {
		// Server-side details stay in the logs.
		msg = errors.DefaultMessageForCode(code)
	}
	resp := common.NewErrorResponse(code.String(), msg)
	resp.RequestID = c.GetString("request_id")
	c.JSON(status, resp)
}

// respondBadRequest reports a body/parameter decode failure.
func respondBadRequest(c *gin.Context, err error) {
	respondError(c, errors.InvalidParam("malformed request").WithCause(err).WithDetail(err.Error()))
}
