package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresPinRepository implements PinRepository using PostgreSQL.
type PostgresPinRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPinRepository creates a new PostgresPinRepository.
func NewPostgresPinRepository(pool *pgxpool.Pool) *PostgresPinRepository {
	return &PostgresPinRepository{pool: pool}
}

// Get fetches the pin for (userID, articleID). Returns (nil, nil) when
// the article is not pinned.
func (r *PostgresPinRepository) Get(ctx context.Context, userID, articleID int64) (*domain.Pin, error) {
	var p domain.Pin
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, article_id, created_at
		FROM user_pins
		WHERE user_id = $1 AND article_id = $2
	`, userID, articleID).Scan(&p.UserID, &p.ArticleID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query pin: %w", err)
	}
	return &p, nil
}

// Set pins an article for a user. Idempotent.
func (r *PostgresPinRepository) Set(ctx context.Context, userID, articleID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_pins (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`, userID, articleID)
	if err != nil {
		return fmt.Errorf("insert pin: %w", err)
	}
	return nil
}

// Remove unpins an article for a user. Removing an absent pin is a no-op.
func (r *PostgresPinRepository) Remove(ctx context.Context, userID, articleID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM user_pins
		WHERE user_id = $1 AND article_id = $2
	`, userID, articleID)
	if err != nil {
		return fmt.Errorf("delete pin: %w", err)
	}
	return nil
}

// ListArticleIDs returns the user's pinned article ids, most recently
// pinned first.
func (r *PostgresPinRepository) ListArticleIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT article_id
		FROM user_pins
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query pinned articles: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pinned article id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
