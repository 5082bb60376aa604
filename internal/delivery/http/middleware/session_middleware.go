package middleware

import (
	"errors"
	"net/http"
	"strings"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/auth"
	"tradenomi-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// SessionMiddleware resolves the current session user from a Bearer token or
// the session cookie. The user must still exist in the store.
func SessionMiddleware(sessions *auth.Sessions, profiles domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Session required", nil)
			c.Abort()
			return
		}

		userID, err := sessions.Parse(tokenString)
		if err != nil {
			logger.Log.Debug("session rejected", "error", err, "ip", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid session", nil)
			c.Abort()
			return
		}

		if _, err := profiles.GetProfile(c.Request.Context(), userID); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
				response.Error(c, http.StatusUnauthorized, "User not found", nil)
				c.Abort()
				return
			}
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}

// CurrentUserID returns 0 outside SessionMiddleware.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyUserID))
}
