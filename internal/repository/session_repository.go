package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresSessionRepository implements SessionRepository using PostgreSQL.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create inserts an anonymous session row for the token.
func (r *PostgresSessionRepository) Create(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.pool.QueryRow(ctx, `
		INSERT INTO sessions (token)
		VALUES ($1)
		RETURNING token, user_id, created_at, updated_at
	`, token).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &s, nil
}

// Get fetches a session by token. Returns (nil, nil) when absent.
func (r *PostgresSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.pool.QueryRow(ctx, `
		SELECT token, user_id, created_at, updated_at
		FROM sessions
		WHERE token = $1
	`, token).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &s, nil
}

// SetUser binds an authenticated user to the session.
func (r *PostgresSessionRepository) SetUser(ctx context.Context, token string, userID int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET user_id = $2, updated_at = NOW()
		WHERE token = $1
	`, token, userID)
	if err != nil {
		return fmt.Errorf("bind session user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bind session user: session %s not found", token)
	}
	return nil
}

// ClearUser unbinds the user from the session, keeping the row so the
// client's cookie still maps to an anonymous session.
func (r *PostgresSessionRepository) ClearUser(ctx context.Context, token string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET user_id = NULL, updated_at = NOW()
		WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("clear session user: session %s not found", token)
	}
	return nil
}

// DeleteIdle removes sessions not touched for idleSeconds.
func (r *PostgresSessionRepository) DeleteIdle(ctx context.Context, idleSeconds int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE updated_at < NOW() - make_interval(secs => $1)
	`, idleSeconds)
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
