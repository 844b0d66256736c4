package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresBehaviorRepository implements BehaviorRepository using PostgreSQL.
type PostgresBehaviorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBehaviorRepository creates a new PostgresBehaviorRepository.
func NewPostgresBehaviorRepository(pool *pgxpool.Pool) *PostgresBehaviorRepository {
	return &PostgresBehaviorRepository{pool: pool}
}

// Record writes one behavior event.
func (r *PostgresBehaviorRepository) Record(ctx context.Context, userID, articleID int64, action domain.BehaviorAction) error {
	if !domain.IsValidAction(action) {
		return fmt.Errorf("record behavior: unknown action %q", action)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_behaviors (user_id, article_id, action)
		VALUES ($1, $2, $3)
	`, userID, articleID, action)
	if err != nil {
		return fmt.Errorf("insert behavior: %w", err)
	}
	return nil
}

// RecordSearch writes one search event per hit in a single COPY.
func (r *PostgresBehaviorRepository) RecordSearch(ctx context.Context, userID int64, results []domain.SearchResult) error {
	if len(results) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(results))
	for _, hit := range results {
		rows = append(rows, []interface{}{userID, hit.ID, string(domain.ActionSearch)})
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"user_behaviors"},
		[]string{"user_id", "article_id", "action"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy search events: %w", err)
	}
	return nil
}

// ClickedArticleIDs returns the distinct article ids the user clicked,
// most recently clicked first.
func (r *PostgresBehaviorRepository) ClickedArticleIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT article_id
		FROM user_behaviors
		WHERE user_id = $1 AND action = 'click'
		GROUP BY article_id
		ORDER BY MAX(created_at) DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query clicked articles: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan clicked article id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
