package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/transcript-service/internal/events"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
	"github.com/SAP-F-2025/transcript-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	db          *gorm.DB
	repo        repositories.Repository
	redisClient *redis.Client
	logger      *slog.Logger
	validator   *validator.Validator
	publisher   events.EventPublisher

	courseService CourseService
	gpaService    GPAService
	exportService ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies
func NewServiceManager(db *gorm.DB, repo repositories.Repository, redisClient *redis.Client, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ServiceManager {
	return &serviceManager{
		db:          db,
		repo:        repo,
		redisClient: redisClient,
		logger:      logger,
		validator:   validator,
		publisher:   publisher,
	}
}

// Initialize sets up all services and verifies their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.courseService = NewCourseService(sm.repo, sm.db, sm.logger, sm.validator, sm.publisher)
	sm.gpaService = NewGPAService(sm.repo, sm.redisClient, sm.logger)
	sm.exportService = NewExportService(sm.repo, sm.logger)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized")

	return nil
}

// Shutdown releases service resources
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	return nil
}

// HealthCheck verifies that services can reach their dependencies
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Course() CourseService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.courseService
}

func (sm *serviceManager) GPA() GPAService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gpaService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.exportService
}
