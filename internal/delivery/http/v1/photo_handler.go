package v1

import (
	"errors"
	"image"
	"io"
	"net/http"
	"strconv"

	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 10 << 20

type PhotoHandler struct {
	photoUC domain.PhotoUsecase
}

func NewPhotoHandler(protected *gin.RouterGroup, photoUC domain.PhotoUsecase, writes gin.HandlerFunc) {
	handler := &PhotoHandler{photoUC: photoUC}

	protected.PUT("/profiilit/oma/kuva", writes, handler.Upload)
	protected.PUT("/profiilit/oma/kuva/rajattu", writes, handler.UploadCropped)
}

// Upload godoc
// @Summary      Upload profile photo
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JPEG, PNG, GIF or WebP"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /profiilit/oma/kuva [put]
// @Security     BearerAuth
func (h *PhotoHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	h.upload(c, nil)
}

// UploadCropped godoc
// @Summary      Upload cropped profile photo
// @Description  x, y, width and height select the area in source pixels
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file  true  "JPEG, PNG, GIF or WebP"
// @Param        x       formData  int   true  "Left edge"
// @Param        y       formData  int   true  "Top edge"
// @Param        width   formData  int   true  "Crop width"
// @Param        height  formData  int   true  "Crop height"
// @Success      200     {object}  response.Response{data=domain.Profile}
// @Failure      400     {object}  response.Response
// @Router       /profiilit/oma/kuva/rajattu [put]
// @Security     BearerAuth
func (h *PhotoHandler) UploadCropped(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)

	var rect [4]int
	for i, name := range []string{"x", "y", "width", "height"} {
		v, err := strconv.Atoi(c.PostForm(name))
		if err != nil || v < 0 {
			c.Error(apperror.BadRequest("Invalid " + name))
			return
		}
		rect[i] = v
	}
	if rect[2] == 0 || rect[3] == 0 {
		c.Error(apperror.BadRequest("Crop area is empty"))
		return
	}

	crop := image.Rect(rect[0], rect[1], rect[0]+rect[2], rect[1]+rect[3])
	h.upload(c, &crop)
}

func (h *PhotoHandler) upload(c *gin.Context, crop *image.Rectangle) {
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Kuva on liian suuri", err))
			return
		}
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Failed to open file"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read file"))
		return
	}

	profile, err := h.photoUC.UpdatePhoto(c.Request.Context(), middleware.CurrentUserID(c), data, crop)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo updated", profile)
}
