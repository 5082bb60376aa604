package v1

import (
	"io"
	"net/http"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/errhash"
	"tradenomi-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxClientErrorBytes = 16 << 10

type ClientErrorResponse struct {
	Hash string `json:"hash"`
}

// NewErrorLogHandler registers the endpoint the frontend reports its own errors to.
func NewErrorLogHandler(public *gin.RouterGroup) {
	public.POST("/virhe", LogClientError)
}

// LogClientError godoc
// @Summary      Report a frontend error
// @Description  Logs the text body and returns a reference hash to show the user
// @Tags         errors
// @Accept       plain
// @Produce      json
// @Param        error  body      string  true  "Error text"
// @Success      200    {object}  response.Response{data=ClientErrorResponse}
// @Router       /virhe [post]
func LogClientError(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxClientErrorBytes))
	if err != nil {
		c.Error(apperror.BadRequest("Unreadable body"))
		return
	}

	hash := errhash.New()
	logger.Log.Error("client error",
		"hash", hash,
		"request_id", c.GetString(string(domain.KeyRequestID)),
		"user_agent", c.GetHeader("User-Agent"),
		"body", string(body),
	)

	response.Success(c, http.StatusOK, "Error logged", ClientErrorResponse{Hash: hash})
}
