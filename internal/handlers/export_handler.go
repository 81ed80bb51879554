package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/transcript-service/internal/services"
	"github.com/SAP-F-2025/transcript-service/internal/utils"
)

type ExportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewExportHandler(service services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportTranscript handles GET /api/courses/export and streams the
// transcript spreadsheet.
func (h *ExportHandler) ExportTranscript(c *gin.Context) {
	h.LogRequest(c, "Exporting transcript")

	file, err := h.service.ExportTranscript(c.Request.Context())
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to export transcript", err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("transcript-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(c.Writer); err != nil {
		utils.FromContext(c, h.logger).Error("Failed to stream transcript", "error", err)
	}
}
