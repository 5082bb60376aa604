package v1

import (
	"net/http"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

func NewHealthHandler(r gin.IRoutes, healthUC usecase.HealthUsecase) {
	r.GET("/health", func(c *gin.Context) {
		status, healthy := healthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})
}
