package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"motor-backend/internal/domain"
	"motor-backend/internal/repository"
)

// SessionService manages server-side sessions keyed by opaque UUID
// tokens.
type SessionService struct {
	sessions repository.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Resolve maps a cookie token to its session. Tokens that are not
// UUIDs cannot be ours, so they resolve to no session without a
// store round-trip.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}
	return s.sessions.Get(ctx, token)
}

// Start creates a fresh anonymous session.
func (s *SessionService) Start(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Create(ctx, uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return session, nil
}

// BindUser attaches an authenticated user to the session.
func (s *SessionService) BindUser(ctx context.Context, token string, userID int64) error {
	return s.sessions.SetUser(ctx, token, userID)
}

// ClearUser detaches the user from the session. Clearing a session
// that does not exist fails; exit deliberately assumes a live session.
func (s *SessionService) ClearUser(ctx context.Context, token string) error {
	return s.sessions.ClearUser(ctx, token)
}
