package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/utils"
)

// BaseHandler carries the dependencies every handler shares.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs the start of handler work with the request-scoped logger.
func (b *BaseHandler) LogRequest(c *gin.Context, msg string) {
	utils.FromContext(c, b.logger).Debug(msg, "method", c.Request.Method, "path", c.Request.URL.Path)
}

// RespondWithError writes the error response and logs the cause.
func (b *BaseHandler) RespondWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		utils.FromContext(c, b.logger).Error(message, "error", err, "status", status)
	}
	c.JSON(status, models.ErrorResponse{Message: message})
}

// parseIDParam parses the :id path parameter. A second return of false
// means the response has already been written.
func (b *BaseHandler) parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		b.RespondWithError(c, http.StatusBadRequest, "Invalid course record id", err)
		return 0, false
	}
	return uint(id), true
}
