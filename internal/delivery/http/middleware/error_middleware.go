package middleware

import (
	"errors"
	"net/http"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/errhash"
	"tradenomi-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. 5xx causes are
// logged under a short hash that is also returned to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		code := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."
		if appErr != nil {
			code = appErr.Code
			if code != http.StatusInternalServerError {
				message = appErr.Message
			}
		}

		hash := errhash.New()
		logger.Log.Error("request failed",
			"hash", hash,
			"status", code,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"error", err,
		)
		response.Error(c, code, message, gin.H{"hash": hash})
	}
}
