package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/transcript-service/internal/cache"
	"github.com/SAP-F-2025/transcript-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	course repositories.CourseRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a new repository manager with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cache.NewCacheManager(config.RedisClient),
	}

	repo.course = NewCoursePostgreSQL(config.DB, config.RedisClient)

	return repo
}

// Course returns the course record repository
func (r *PostgreSQLRepository) Course() repositories.CourseRepository {
	return r.course
}

// Ping verifies database connectivity
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close releases the underlying database connection
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// RepositoryManager wires repository construction and startup checks the
// way main.go consumes them.
type RepositoryManager struct {
	config     RepositoryConfig
	repository repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) *RepositoryManager {
	return &RepositoryManager{
		config:     config,
		repository: NewPostgreSQLRepository(config),
	}
}

// Initialize verifies connectivity before the server starts taking traffic
func (rm *RepositoryManager) Initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rm.repository.Ping(ctx); err != nil {
		return fmt.Errorf("repository initialization failed: %w", err)
	}

	return nil
}

// GetRepository returns the initialized repository
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repository
}
