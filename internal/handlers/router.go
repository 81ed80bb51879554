package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/services"
	"github.com/SAP-F-2025/transcript-service/internal/utils"
)

type HandlerManager struct {
	courseHandler *CourseHandler
	gpaHandler    *GPAHandler
	exportHandler *ExportHandler

	serviceManager services.ServiceManager
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		courseHandler:  NewCourseHandler(serviceManager.Course(), logger),
		gpaHandler:     NewGPAHandler(serviceManager.GPA(), logger),
		exportHandler:  NewExportHandler(serviceManager.Export(), logger),
		serviceManager: serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		courses := api.Group("/courses")
		{
			courses.POST("", hm.courseHandler.CreateCourse)
			courses.GET("", hm.courseHandler.ListCourses)
			courses.GET("/semester/:semester", hm.courseHandler.ListCoursesBySemester)

			// Aggregations before the :id wildcard so the static segments win.
			courses.GET("/cgpa", hm.gpaHandler.GetOverallCGPA)
			courses.GET("/cgpa/semester/:semester", hm.gpaHandler.GetSemesterGPA)

			courses.GET("/export", hm.exportHandler.ExportTranscript)

			courses.GET("/:id", hm.courseHandler.GetCourse)
			courses.PUT("/:id", hm.courseHandler.UpdateCourse)
			courses.DELETE("/:id", hm.courseHandler.DeleteCourse)
		}
	}
}

// HealthCheck reports service and dependency health.
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, models.HealthResponse{
		Status:    status,
		Service:   "transcript-service",
		Timestamp: time.Now().UTC(),
	})
}
