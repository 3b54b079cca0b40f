package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	sessionRepo "github.com/m1shk4/HMS-AppointmentGateway/internal/infra/storage/session"
)

// Service owns the session lifecycle: created at login with the
// upstream-issued token, loaded per request, deleted at logout.
type Service struct {
	repo SessionRepository
	log  Logger
}

// NewService creates a sessions service.
func NewService(repo SessionRepository, log Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create stores a new session for an upstream-issued access token and
// returns it with a generated ID.
func (s *Service) Create(ctx context.Context, userID int64, role, accessToken string) (*domain.Session, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if accessToken == "" {
		return nil, fmt.Errorf("%w: accessToken is required", ErrInvalidInput)
	}

	session := &domain.Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		Role:        role,
		AccessToken: accessToken,
	}

	created, err := s.repo.Create(ctx, session)
	if err != nil {
		s.log.Error("CreateSession: failed to store session for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.log.Info("CreateSession: session created for user=%d, role=%s", userID, role)
	return created, nil
}

// Get loads a session by ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.log.Error("GetSession: failed to load session: %v", err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	return session, nil
}

// Delete clears a session by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.log.Error("DeleteSession: failed to delete session: %v", err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}

	s.log.Info("DeleteSession: session %s cleared", id)
	return nil
}
