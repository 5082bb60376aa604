package v1

import (
	"net/http"

	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	adUC domain.AdUsecase
}

// NewAdHandler registers the ad routes. writes is applied to the mail triggering POSTs.
func NewAdHandler(protected *gin.RouterGroup, adUC domain.AdUsecase, writes gin.HandlerFunc) {
	handler := &AdHandler{adUC: adUC}

	ads := protected.Group("/ilmoitukset")
	{
		ads.GET("", handler.List)
		ads.POST("", writes, handler.Create)
		ads.GET("/tradenomilta/:id", handler.ListByUser)
		ads.GET("/:id", handler.Get)
		ads.POST("/:id/vastaus", writes, handler.Answer)
	}
}

type AnswerRequest struct {
	Message string `json:"message" binding:"required"`
}

type AdListResponse struct {
	Ads   []domain.AdWithAuthor `json:"ads"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
}

// Create godoc
// @Summary      Create an ad
// @Description  Subscribed members are notified by email
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        ad   body      domain.AdData  true  "Ad"
// @Success      201  {object}  response.Response{data=domain.Ad}
// @Failure      400  {object}  response.Response
// @Router       /ilmoitukset [post]
// @Security     BearerAuth
func (h *AdHandler) Create(c *gin.Context) {
	var req domain.AdData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	ad, err := h.adUC.CreateAd(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Ad created successfully", ad)
}

// List godoc
// @Summary      List ads
// @Tags         ads
// @Produce      json
// @Param        page       query  int  false  "Page, starting from 1"
// @Param        page_size  query  int  false  "Page size, max 100"
// @Success      200  {object}  response.Response{data=AdListResponse}
// @Router       /ilmoitukset [get]
// @Security     BearerAuth
func (h *AdHandler) List(c *gin.Context) {
	page, err := queryInt(c, "page")
	if err != nil {
		c.Error(err)
		return
	}
	pageSize, err := queryInt(c, "page_size")
	if err != nil {
		c.Error(err)
		return
	}

	p, size := 1, 0
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}

	ads, total, err := h.adUC.ListAds(c.Request.Context(), p, size)
	if err != nil {
		c.Error(err)
		return
	}

	if p < 1 {
		p = 1
	}
	response.Success(c, http.StatusOK, "Ads retrieved successfully", AdListResponse{
		Ads:   ads,
		Total: total,
		Page:  p,
	})
}

// Get godoc
// @Summary      Get an ad
// @Tags         ads
// @Produce      json
// @Param        id   path      int  true  "Ad ID"
// @Success      200  {object}  response.Response{data=domain.AdWithAuthor}
// @Failure      404  {object}  response.Response
// @Router       /ilmoitukset/{id} [get]
// @Security     BearerAuth
func (h *AdHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	ad, err := h.adUC.GetAd(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Ad retrieved successfully", ad)
}

// ListByUser godoc
// @Summary      List ads by member
// @Tags         ads
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.AdWithAuthor}
// @Router       /ilmoitukset/tradenomilta/{id} [get]
// @Security     BearerAuth
func (h *AdHandler) ListByUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	ads, err := h.adUC.ListAdsForUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Ads retrieved successfully", ads)
}

// Answer godoc
// @Summary      Answer an ad
// @Description  The ad owner is notified unless they opted out
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Ad ID"
// @Param        answer  body      AnswerRequest  true  "Answer"
// @Success      201     {object}  response.Response{data=domain.Answer}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /ilmoitukset/{id}/vastaus [post]
// @Security     BearerAuth
func (h *AdHandler) Answer(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	answer, err := h.adUC.CreateAnswer(c.Request.Context(), middleware.CurrentUserID(c), id, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Answer sent", answer)
}
