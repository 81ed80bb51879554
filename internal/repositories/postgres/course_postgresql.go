package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/transcript-service/internal/cache"
	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
)

type CoursePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CourseRepository {
	return &CoursePostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (r *CoursePostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Create persists a new course record and invalidates cached listings
func (r *CoursePostgreSQL) Create(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error {
	if err := r.getDB(tx).WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create course record: %w", err)
	}
	cache.InvalidateCourseCache(ctx, r.cacheManager, record.ID, record.Semester)

	return nil
}

// GetByID retrieves a course record by ID with caching
func (r *CoursePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.CourseRecord, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var record models.CourseRecord

	err := r.cacheManager.Course.CacheOrExecute(ctx, cacheKey, &record, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		var dbRecord models.CourseRecord
		if err := r.getDB(tx).WithContext(ctx).First(&dbRecord, id).Error; err != nil {
			return nil, fmt.Errorf("failed to get course record: %w", err)
		}
		return &dbRecord, nil
	})
	if err != nil {
		return nil, err
	}

	// The derived field does not survive the cache round trip.
	record.GradePoint = record.Grade.Points()
	return &record, nil
}

// GetAll retrieves every course record in insertion order
func (r *CoursePostgreSQL) GetAll(ctx context.Context) ([]*models.CourseRecord, error) {
	var records []*models.CourseRecord

	err := r.cacheManager.Course.CacheOrExecute(ctx, "list:all", &records, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		var dbRecords []*models.CourseRecord
		if err := r.db.WithContext(ctx).Order("id").Find(&dbRecords).Error; err != nil {
			return nil, fmt.Errorf("failed to list course records: %w", err)
		}
		return dbRecords, nil
	})
	if err != nil {
		return nil, err
	}

	refreshGradePoints(records)
	return records, nil
}

// GetBySemester retrieves records whose semester matches exactly.
// An empty result is valid, not an error.
func (r *CoursePostgreSQL) GetBySemester(ctx context.Context, semester string) ([]*models.CourseRecord, error) {
	cacheKey := fmt.Sprintf("semester:%s", semester)
	var records []*models.CourseRecord

	err := r.cacheManager.Course.CacheOrExecute(ctx, cacheKey, &records, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		var dbRecords []*models.CourseRecord
		if err := r.db.WithContext(ctx).Where("semester = ?", semester).Order("id").Find(&dbRecords).Error; err != nil {
			return nil, fmt.Errorf("failed to list course records for semester: %w", err)
		}
		return dbRecords, nil
	})
	if err != nil {
		return nil, err
	}

	refreshGradePoints(records)
	return records, nil
}

// Update replaces the mutable fields of an existing record
func (r *CoursePostgreSQL) Update(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error {
	result := r.getDB(tx).WithContext(ctx).
		Model(&models.CourseRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"semester":    record.Semester,
			"course_name": record.CourseName,
			"unit":        record.Unit,
			"grade":       record.Grade,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update course record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	record.GradePoint = record.Grade.Points()

	// The update may have moved the record out of a semester this layer no
	// longer sees, so every semester listing has to go.
	cache.InvalidateAllCourseCache(ctx, r.cacheManager, record.ID)

	return nil
}

// Delete removes a record permanently
func (r *CoursePostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := r.getDB(tx).WithContext(ctx).Delete(&models.CourseRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete course record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	cache.InvalidateAllCourseCache(ctx, r.cacheManager, id)

	return nil
}

func refreshGradePoints(records []*models.CourseRecord) {
	for _, record := range records {
		record.GradePoint = record.Grade.Points()
	}
}
