package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/services"
	"github.com/SAP-F-2025/transcript-service/internal/utils"
)

type CourseHandler struct {
	BaseHandler
	service services.CourseService
}

func NewCourseHandler(service services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateCourse handles POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	h.LogRequest(c, "Creating course record")

	var req services.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	h.LogRequest(c, "Getting course record")

	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	h.LogRequest(c, "Listing course records")

	records, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if records == nil {
		records = []*models.CourseRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// ListCoursesBySemester handles GET /api/courses/semester/:semester.
// An unknown semester yields an empty array, not an error.
func (h *CourseHandler) ListCoursesBySemester(c *gin.Context) {
	h.LogRequest(c, "Listing course records by semester")

	records, err := h.service.GetBySemester(c.Request.Context(), c.Param("semester"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if records == nil {
		records = []*models.CourseRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// UpdateCourse handles PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	h.LogRequest(c, "Updating course record")

	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteCourse handles DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	h.LogRequest(c, "Deleting course record")

	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Course record not found",
		})
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
