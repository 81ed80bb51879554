package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/transcript-service/internal/events"
	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
	"github.com/SAP-F-2025/transcript-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewCourseService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *courseService) Create(ctx context.Context, req *CreateCourseRequest) (*models.CourseRecord, error) {
	s.logger.Info("Creating course record", "course_name", req.CourseName, "semester", req.Semester)

	if errs := s.validator.GetBusinessValidator().ValidateCourseCreate(req); len(errs) > 0 {
		return nil, errs
	}

	record := &models.CourseRecord{
		Semester:   req.Semester,
		CourseName: req.CourseName,
		Unit:       req.Unit,
		Grade:      req.Grade,
	}

	err := s.withTx(ctx, func(tx *gorm.DB) error {
		return s.repo.Course().Create(ctx, tx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create course record: %w", err)
	}

	s.publishEvent(ctx, events.EventCourseCreated, record)

	return record, nil
}

func (s *courseService) GetByID(ctx context.Context, id uint) (*models.CourseRecord, error) {
	record, err := s.repo.Course().GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course record: %w", err)
	}

	return record, nil
}

func (s *courseService) GetAll(ctx context.Context) ([]*models.CourseRecord, error) {
	records, err := s.repo.Course().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list course records: %w", err)
	}

	return records, nil
}

func (s *courseService) GetBySemester(ctx context.Context, semester string) ([]*models.CourseRecord, error) {
	records, err := s.repo.Course().GetBySemester(ctx, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to list course records for semester: %w", err)
	}

	return records, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*models.CourseRecord, error) {
	s.logger.Info("Updating course record", "id", id)

	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.GetBusinessValidator().ValidateCourseUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	previousSemester := record.Semester
	record.Semester = req.Semester
	record.CourseName = req.CourseName
	record.Unit = req.Unit
	record.Grade = req.Grade

	err = s.withTx(ctx, func(tx *gorm.DB) error {
		return s.repo.Course().Update(ctx, tx, record)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course record: %w", err)
	}

	s.publishEvent(ctx, events.EventCourseUpdated, record)
	if previousSemester != record.Semester {
		s.logger.Debug("Course record moved between semesters",
			"id", record.ID, "from", previousSemester, "to", record.Semester)
	}

	return record, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting course record", "id", id)

	record, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.withTx(ctx, func(tx *gorm.DB) error {
		return s.repo.Course().Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course record: %w", err)
	}

	s.publishEvent(ctx, events.EventCourseDeleted, record)

	return nil
}

// ===== HELPERS =====

// withTx runs fn inside a transaction. A nil db (repository stubbed in
// tests) runs fn directly.
func (s *courseService) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// publishEvent emits a mutation event. Failures are logged and swallowed,
// the write already committed.
func (s *courseService) publishEvent(ctx context.Context, eventType string, record *models.CourseRecord) {
	if s.publisher == nil {
		return
	}

	event := &events.CourseEvent{
		Type:       eventType,
		CourseID:   record.ID,
		Semester:   record.Semester,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishCourseEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish course event",
			"error", err, "type", eventType, "course_id", record.ID)
	}
}
