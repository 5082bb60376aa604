package v1

import (
	"net/http"

	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase, writes gin.HandlerFunc) {
	handler := &ContactHandler{contactUC: contactUC}

	protected.POST("/kontaktit/:user_id", writes, handler.AddContact)
}

// AddContact godoc
// @Summary      Send business card
// @Description  Records a contact and mails the card to the target member if they allow it
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        user_id  path      int                  true  "Target user ID"
// @Param        card     body      domain.BusinessCard  true  "Business card"
// @Success      201      {object}  response.Response{data=domain.Contact}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /kontaktit/{user_id} [post]
// @Security     BearerAuth
func (h *ContactHandler) AddContact(c *gin.Context) {
	targetID, err := pathID(c, "user_id")
	if err != nil {
		c.Error(err)
		return
	}

	var card domain.BusinessCard
	if err := c.ShouldBindJSON(&card); err != nil {
		c.Error(bindError(err))
		return
	}

	contact, err := h.contactUC.AddContact(c.Request.Context(), middleware.CurrentUserID(c), targetID, &card)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Business card sent", contact)
}
