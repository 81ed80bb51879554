package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	course *mockCourseRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{course: &mockCourseRepository{records: map[uint]models.CourseRecord{}}}
}

func (m *mockRepository) Course() repositories.CourseRepository { return m.course }
func (m *mockRepository) Ping(ctx context.Context) error        { return nil }
func (m *mockRepository) Close() error                          { return nil }

type mockCourseRepository struct {
	mu      sync.Mutex
	nextID  uint
	records map[uint]models.CourseRecord
}

func (m *mockCourseRepository) Create(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	record.ID = m.nextID
	record.GradePoint = record.Grade.Points()
	m.records[record.ID] = *record
	return nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.CourseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	record.GradePoint = record.Grade.Points()
	return &record, nil
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]*models.CourseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.CourseRecord
	for id := uint(1); id <= m.nextID; id++ {
		if record, ok := m.records[id]; ok {
			record.GradePoint = record.Grade.Points()
			copied := record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockCourseRepository) GetBySemester(ctx context.Context, semester string) ([]*models.CourseRecord, error) {
	all, _ := m.GetAll(ctx)
	var out []*models.CourseRecord
	for _, record := range all {
		if record.Semester == semester {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *mockCourseRepository) Update(ctx context.Context, tx *gorm.DB, record *models.CourseRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	record.GradePoint = record.Grade.Points()
	m.records[record.ID] = *record
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}
