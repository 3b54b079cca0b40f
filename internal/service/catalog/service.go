package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/infra/cache/catalogcache"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/integrations/hospitalapi"
)

// Service serves department and doctor reads, with an optional
// read-through cache in front of the upstream hospital API.
type Service struct {
	client HospitalClient
	cache  Cache
	log    Logger
}

// NewService creates a catalog service. cache may be nil when caching
// is disabled.
func NewService(client HospitalClient, cache Cache, log Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Departments returns the department list.
// Cache failures degrade gracefully to an upstream read.
func (s *Service) Departments(ctx context.Context, token string) ([]domain.Department, error) {
	if s.cache != nil {
		departments, err := s.cache.Departments(ctx)
		if err == nil {
			return departments, nil
		}
		if !errors.Is(err, catalogcache.ErrCacheMiss) {
			s.log.Warn("Departments: cache read failed, falling back to upstream: %v", err)
		}
	}

	departments, err := s.client.GetDepartments(ctx, token)
	if err != nil {
		return nil, s.mapClientError("Departments", err)
	}

	if s.cache != nil {
		if err := s.cache.SetDepartments(ctx, departments); err != nil {
			s.log.Warn("Departments: cache write failed: %v", err)
		}
	}

	return departments, nil
}

// Doctors returns the doctors of a department.
func (s *Service) Doctors(ctx context.Context, token string, departmentID int64) ([]domain.Doctor, error) {
	if s.cache != nil {
		doctors, err := s.cache.Doctors(ctx, departmentID)
		if err == nil {
			return doctors, nil
		}
		if !errors.Is(err, catalogcache.ErrCacheMiss) {
			s.log.Warn("Doctors: cache read failed, falling back to upstream: %v", err)
		}
	}

	doctors, err := s.client.GetDoctors(ctx, token, departmentID)
	if err != nil {
		return nil, s.mapClientError("Doctors", err)
	}

	if s.cache != nil {
		if err := s.cache.SetDoctors(ctx, departmentID, doctors); err != nil {
			s.log.Warn("Doctors: cache write failed: %v", err)
		}
	}

	return doctors, nil
}

// DoctorByID returns one doctor of a department.
// The upstream API only exposes per-department doctor lists, so the lookup
// goes through Doctors and selects by ID.
func (s *Service) DoctorByID(ctx context.Context, token string, departmentID, doctorID int64) (*domain.Doctor, error) {
	doctors, err := s.Doctors(ctx, token, departmentID)
	if err != nil {
		return nil, err
	}

	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &doctors[i], nil
		}
	}

	return nil, ErrDoctorNotFound
}

func (s *Service) mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, hospitalapi.ErrUnauthorized):
		s.log.Warn("%s: upstream rejected token", op)
		return ErrUnauthorized
	case errors.Is(err, hospitalapi.ErrDepartmentNotFound):
		return ErrDepartmentNotFound
	default:
		s.log.Error("%s: upstream request failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
