package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/transcript-service/internal/cache"
	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
)

type gpaService struct {
	repo   repositories.Repository
	cache  *cache.CacheHelper
	logger *slog.Logger
}

func NewGPAService(repo repositories.Repository, redisClient *redis.Client, logger *slog.Logger) GPAService {
	return &gpaService{
		repo:   repo,
		cache:  cache.NewCacheManager(redisClient).GPA,
		logger: logger,
	}
}

// Overall computes the cumulative GPA over every stored record. An empty
// store yields the zero-valued result, not an error. Results are cached
// short-lived and invalidated on every course mutation.
func (s *gpaService) Overall(ctx context.Context) (*models.CGPAResponse, error) {
	var resp models.CGPAResponse

	err := s.cache.CacheOrExecute(ctx, "overall", &resp, cache.GPACacheConfig.TTL, func() (interface{}, error) {
		records, err := s.repo.Course().GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load records for CGPA: %w", err)
		}
		return Aggregate(records, nil), nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// BySemester computes the GPA over one semester's records. A semester with
// no records is a not-found condition, unlike the overall case; the error
// is never cached.
func (s *gpaService) BySemester(ctx context.Context, semester string) (*models.CGPAResponse, error) {
	var resp models.CGPAResponse

	err := s.cache.CacheOrExecute(ctx, "semester:"+semester, &resp, cache.GPACacheConfig.TTL, func() (interface{}, error) {
		records, err := s.repo.Course().GetBySemester(ctx, semester)
		if err != nil {
			return nil, fmt.Errorf("failed to load records for semester GPA: %w", err)
		}

		if len(records) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRecordsForSemester, semester)
		}

		return Aggregate(records, &semester), nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Aggregate computes the unit-weighted grade-point average over records.
// totalGradePoints is Σ(unit × gradePoint), totalUnits is Σ(unit), and the
// average is their quotient rounded half-up to two decimal places.
func Aggregate(records []*models.CourseRecord, semester *string) *models.CGPAResponse {
	resp := &models.CGPAResponse{Semester: semester}

	if len(records) == 0 {
		return resp
	}

	for _, record := range records {
		resp.TotalUnits += record.Unit
		resp.TotalGradePoints += record.Unit * record.Grade.Points()
	}

	if resp.TotalUnits > 0 {
		cgpa := float64(resp.TotalGradePoints) / float64(resp.TotalUnits)
		resp.CGPA = math.Round(cgpa*100) / 100
	}

	return resp
}
