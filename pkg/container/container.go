package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"employee-service/internal/config"
	infracache "employee-service/internal/infrastructure/cache"
	"employee-service/internal/infrastructure/database"
	"employee-service/pkg/cache"
	"employee-service/pkg/logger"

	"employee-service/internal/domains/employee"
	employeeHandler "employee-service/internal/domains/employee/handler"
	employeeRepo "employee-service/internal/domains/employee/repository"
	employeeService "employee-service/internal/domains/employee/service"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. All wiring is explicit: the handler holds the
// service, the service holds the repository, both built here at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	EmployeeRepo    employee.Repository
	EmployeeService employee.Service
	EmployeeHandler *employeeHandler.EmployeeHandler

	redis *infracache.RedisClient
}

// NewContainer initializes every dependency. Any failure except redis
// aborts startup; redis is optional and the service degrades to
// cache-less reads when it is down.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient := infracache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		log.Printf("[CONTAINER] Redis unavailable, running without cache: %v", err)
	} else {
		c.redis = redisClient
		c.Cache = redisClient
	}

	c.EmployeeRepo = employeeRepo.NewPostgresRepository(c.DB.Pool)
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo, c.Cache)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close redis client: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
