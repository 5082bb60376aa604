package v1

import (
	"net/http"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	public.GET("/tehtavaluokat", handler.PositionTitles)
	public.GET("/toimialat", handler.DomainTitles)
}

// PositionTitles godoc
// @Summary      Position titles
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      503  {object}  response.Response
// @Router       /tehtavaluokat [get]
func (h *CatalogHandler) PositionTitles(c *gin.Context) {
	titles, err := h.catalogUC.PositionTitles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Position titles retrieved successfully", titles)
}

// DomainTitles godoc
// @Summary      Industry domains
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      503  {object}  response.Response
// @Router       /toimialat [get]
func (h *CatalogHandler) DomainTitles(c *gin.Context) {
	titles, err := h.catalogUC.DomainTitles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Domains retrieved successfully", titles)
}
