package repositories

import (
	"context"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"gorm.io/gorm"
)

// CourseRepository persists course records. Mutating operations accept an
// optional transaction handle; passing nil uses the repository's own
// connection.
type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.CourseRecord, error)
	GetAll(ctx context.Context) ([]*models.CourseRecord, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.CourseRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

// Repository aggregates all sub-repositories.
type Repository interface {
	Course() CourseRepository

	Ping(ctx context.Context) error
	Close() error
}
