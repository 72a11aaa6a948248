package service

import (
	"context"
	"fmt"
	"time"

	"employee-service/internal/domains/employee"
	"employee-service/pkg/cache"
	"employee-service/pkg/logger"
)

const (
	listCacheKey = "employees:all"
	listCacheTTL = 30 * time.Second
)

// employeeService implements employee.Service.
type employeeService struct {
	repo  employee.Repository
	cache cache.Cache
}

// NewEmployeeService creates a new employee service instance.
// Dependency injection pattern - receives the repository from the container.
// The cache may be nil when redis is unavailable.
func NewEmployeeService(repo employee.Repository, c cache.Cache) employee.Service {
	return &employeeService{
		repo:  repo,
		cache: c,
	}
}

// ListAll returns every employee, serving from the redis list cache when
// warm. Cache failures are logged and ignored so a redis outage never
// fails the request.
func (s *employeeService) ListAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	if s.cache != nil {
		var cached []employee.EmployeeResponse
		found, err := s.cache.Get(ctx, listCacheKey, &cached)
		if err != nil {
			logger.Warn("employee list cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listCacheKey, responses, listCacheTTL); err != nil {
			logger.Warn("employee list cache write failed", err)
		}
	}

	return responses, nil
}

// Create persists a new employee record. Validation happens upstream in the
// handler; invariant violations surface as conflict errors from storage.
func (s *employeeService) Create(ctx context.Context, req *employee.EmployeeRequest) (bool, error) {
	emp, err := req.ToEmployee()
	if err != nil {
		return false, fmt.Errorf("invalid employee payload: %w", err)
	}

	if _, err := s.repo.Save(ctx, emp); err != nil {
		return false, err
	}

	s.dropListCache(ctx)
	return true, nil
}

// Update replaces the record matching the request's business code wholesale,
// keeping the stored internal id. An unknown code returns (false, nil) with
// no write.
func (s *employeeService) Update(ctx context.Context, req *employee.EmployeeRequest) (bool, error) {
	existing, err := s.repo.FindByCode(ctx, req.EmployeeCode)
	if err != nil {
		return false, err
	}

	if existing == nil {
		return false, nil
	}

	emp, err := req.ToEmployee()
	if err != nil {
		return false, fmt.Errorf("invalid employee payload: %w", err)
	}

	// Full-record replace keyed on the stored identifier, never a merge.
	emp.ID = existing.ID

	if _, err := s.repo.Save(ctx, emp); err != nil {
		return false, err
	}

	s.dropListCache(ctx)
	return true, nil
}

// Delete removes the record matching the business code. An unknown code
// returns (false, nil) with no side effect.
func (s *employeeService) Delete(ctx context.Context, employeeCode string) (bool, error) {
	existing, err := s.repo.FindByCode(ctx, employeeCode)
	if err != nil {
		return false, err
	}

	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		return false, err
	}

	s.dropListCache(ctx)
	return true, nil
}

func (s *employeeService) dropListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Warn("employee list cache invalidation failed", err)
	}
}
