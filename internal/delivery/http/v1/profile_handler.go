package v1

import (
	"net/http"
	"strings"

	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiilit")
	{
		profiles.GET("", handler.List)
		profiles.GET("/oma", handler.GetMe)
		profiles.PUT("/oma", handler.UpdateMe)
		profiles.POST("/luo", handler.Consent)
		profiles.GET("/:id", handler.Get)
	}
}

// List godoc
// @Summary      List profiles
// @Description  Filtered, sorted and paginated member profiles
// @Tags         profiles
// @Produce      json
// @Param        limit         query  int     false  "Max results, 0 returns an empty list"
// @Param        offset        query  int     false  "Results to skip"
// @Param        category      query  string  false  "Industry domain, repeatable or comma separated"
// @Param        title         query  string  false  "Position title"
// @Param        municipality  query  string  false  "Location"
// @Param        order         query  string  false  "recent, alphaAsc or alphaDesc"
// @Param        inactive      query  bool    false  "Include inactive profiles"
// @Success      200  {object}  response.Response{data=[]domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profiilit [get]
// @Security     BearerAuth
func (h *ProfileHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.Error(err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		c.Error(err)
		return
	}
	includeInactive, err := queryBool(c, "inactive")
	if err != nil {
		c.Error(err)
		return
	}

	params := domain.ProfileListParams{
		IncludeInactive: includeInactive,
		Limit:           limit,
		Categories:      queryList(c, "category"),
		Title:           strings.TrimSpace(c.Query("title")),
		Municipality:    strings.TrimSpace(c.Query("municipality")),
		Sort:            domain.ProfileSort(c.Query("order")),
	}
	if offset != nil {
		params.Offset = *offset
	}

	profiles, err := h.profileUC.ListProfiles(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profiles retrieved successfully", profiles)
}

// Get godoc
// @Summary      Get profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profiilit/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// GetMe godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Router       /profiilit/oma [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Description  Keys present in the body overwrite stored ones, the rest are kept
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileDataPatch  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Router       /profiilit/oma [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var patch domain.ProfileDataPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	profile, err := h.profileUC.UpdateOwnProfile(c.Request.Context(), middleware.CurrentUserID(c), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// Consent godoc
// @Summary      Publish own profile
// @Description  Marks the session user's profile active so it appears in listings
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Router       /profiilit/luo [post]
// @Security     BearerAuth
func (h *ProfileHandler) Consent(c *gin.Context) {
	profile, err := h.profileUC.ConsentToProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile published", profile)
}

