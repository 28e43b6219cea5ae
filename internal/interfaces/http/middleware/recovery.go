package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// Recovery converts panics into structured 500 responses.  Invariant panics
// raised in debug mode land here too, with their code preserved.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				code := errors.ErrCodeInternal
				if ae, ok := r.(*errors.AppError); ok {
					code = ae.Code
					logger.Error("invariant panic", logging.String("error", ae.Error()))
				} else {
					logger.Error("panic recovered", logging.Any("panic", r))
				}
				resp := common.NewErrorResponse(code.String(), errors.DefaultMessageForCode(code))
				resp.RequestID = c.GetString("request_id")
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
