package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/psqlbuilder"
)

// Repository stores dashboard sessions in postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a session repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new session. ID must already be set by the caller.
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"id",
			"user_id",
			"role",
			"access_token",
		).
		Values(
			s.ID,
			s.UserID,
			s.Role,
			s.AccessToken,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID loads a session by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"role",
		"access_token",
		"created_at",
		"updated_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.Role,
		&s.AccessToken,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Delete removes a session by its ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
