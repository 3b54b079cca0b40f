package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

const (
	departmentsKey   = "catalog:departments"
	doctorsKeyFormat = "catalog:departments:%d:doctors"
)

// Cache is a short-TTL redis cache for the upstream catalog
// (departments and per-department doctor lists).
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a catalog cache on top of an existing redis client.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Departments returns the cached department list or ErrCacheMiss.
func (c *Cache) Departments(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	if err := c.get(ctx, departmentsKey, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// SetDepartments caches the department list.
func (c *Cache) SetDepartments(ctx context.Context, departments []domain.Department) error {
	return c.set(ctx, departmentsKey, departments)
}

// Doctors returns the cached doctor list of a department or ErrCacheMiss.
func (c *Cache) Doctors(ctx context.Context, departmentID int64) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := c.get(ctx, fmt.Sprintf(doctorsKeyFormat, departmentID), &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// SetDoctors caches the doctor list of a department.
func (c *Cache) SetDoctors(ctx context.Context, departmentID int64, doctors []domain.Doctor) error {
	return c.set(ctx, fmt.Sprintf(doctorsKeyFormat, departmentID), doctors)
}

func (c *Cache) get(ctx context.Context, key string, v interface{}) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrInternal, key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", ErrInternal, key, err)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrInternal, key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrInternal, key, err)
	}
	return nil
}
