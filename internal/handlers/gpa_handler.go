package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/services"
	"github.com/SAP-F-2025/transcript-service/internal/utils"
)

type GPAHandler struct {
	BaseHandler
	service services.GPAService
}

func NewGPAHandler(service services.GPAService, logger utils.Logger) *GPAHandler {
	return &GPAHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetOverallCGPA handles GET /api/courses/cgpa. An empty store returns the
// zero-valued result with a null semester.
func (h *GPAHandler) GetOverallCGPA(c *gin.Context) {
	h.LogRequest(c, "Computing overall CGPA")

	result, err := h.service.Overall(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSemesterGPA handles GET /api/courses/cgpa/semester/:semester. A
// semester with no records is 404, unlike the overall case.
func (h *GPAHandler) GetSemesterGPA(c *gin.Context) {
	h.LogRequest(c, "Computing semester GPA")

	result, err := h.service.BySemester(c.Request.Context(), c.Param("semester"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GPAHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoRecordsForSemester):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "No records found for semester",
		})
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
