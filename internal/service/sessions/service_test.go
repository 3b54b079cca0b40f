package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	sessionRepo "github.com/m1shk4/HMS-AppointmentGateway/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type memRepo struct {
	sessions map[string]*domain.Session
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[string]*domain.Session)}
}

func (m *memRepo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.sessions[id]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewService(newMemRepo(), nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, 42, "receptionist", "upstream-token")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), loaded.UserID)
	assert.Equal(t, "receptionist", loaded.Role)
	assert.Equal(t, "upstream-token", loaded.AccessToken)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemRepo(), nopLogger{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 0, "admin", "tok")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 42, "admin", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetEmptyID(t *testing.T) {
	svc := NewService(newMemRepo(), nopLogger{})

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteUnknownSession(t *testing.T) {
	svc := NewService(newMemRepo(), nopLogger{})

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
