package v1

import (
	"net/http"

	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUC domain.SettingsUsecase
}

func NewSettingsHandler(protected *gin.RouterGroup, settingsUC domain.SettingsUsecase) {
	handler := &SettingsHandler{settingsUC: settingsUC}

	protected.GET("/asetukset", handler.Get)
	protected.PUT("/asetukset", handler.Update)
}

// Get godoc
// @Summary      Get notification settings
// @Description  Unset toggles are reported as true
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResolvedSettings}
// @Router       /asetukset [get]
// @Security     BearerAuth
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUC.GetSettings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// Update godoc
// @Summary      Update notification settings
// @Description  Keys present in the body overwrite stored ones, the rest are kept
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      domain.Settings  true  "Settings"
// @Success      200       {object}  response.Response{data=domain.ResolvedSettings}
// @Failure      400       {object}  response.Response
// @Router       /asetukset [put]
// @Security     BearerAuth
func (h *SettingsHandler) Update(c *gin.Context) {
	var patch domain.Settings
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request.Context(), middleware.CurrentUserID(c), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Settings updated successfully", settings)
}
