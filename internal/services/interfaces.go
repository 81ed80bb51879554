package services

import (
	"context"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type CreateCourseRequest = validator.CourseCreateRequest
type UpdateCourseRequest = validator.CourseUpdateRequest

// ===== SERVICE INTERFACES =====

// CourseService covers CRUD persistence of course records.
type CourseService interface {
	Create(ctx context.Context, req *CreateCourseRequest) (*models.CourseRecord, error)
	GetByID(ctx context.Context, id uint) (*models.CourseRecord, error)
	GetAll(ctx context.Context) ([]*models.CourseRecord, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.CourseRecord, error)
	Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*models.CourseRecord, error)
	Delete(ctx context.Context, id uint) error
}

// GPAService derives grade-point averages from the current record set.
type GPAService interface {
	Overall(ctx context.Context) (*models.CGPAResponse, error)
	BySemester(ctx context.Context, semester string) (*models.CGPAResponse, error)
}

// ExportService renders the transcript as a spreadsheet.
type ExportService interface {
	ExportTranscript(ctx context.Context) (*excelize.File, error)
}

// ServiceManager provides access to all services with lifecycle management.
type ServiceManager interface {
	Course() CourseService
	GPA() GPAService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}
