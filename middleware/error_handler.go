package middleware

import (
	apperrors "storeapi/errors"
	"storeapi/response"
	"storeapi/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error a handler attached with c.Error into a
// reply: not-found errors give 404, conflicts 409, other AppErrors 400 and
// anything else 500.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code != apperrors.ErrCodeNotFound {
			if appErr.Code == apperrors.ErrCodeConflict {
				response.Conflict(c, appErr.Message)
				return
			}
			response.ValidationError(c, appErr.Message)
			return
		}

		if apperrors.IsNotFound(err) {
			response.NotFound(c, err.Error())
			return
		}

		log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.ServerError(c)
	}
}
