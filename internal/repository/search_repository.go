package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresSearchRepository implements SearchRepository on top of the
// articles table's tsvector index. Hits carry only the denormalized
// fields the index holds: title, a summary snippet, author, and rank.
type PostgresSearchRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSearchRepository creates a new PostgresSearchRepository.
func NewPostgresSearchRepository(pool *pgxpool.Pool) *PostgresSearchRepository {
	return &PostgresSearchRepository{pool: pool}
}

// Search runs a full-text query and returns ranked hits.
func (r *PostgresSearchRepository) Search(ctx context.Context, keywords string, limit int) ([]domain.SearchResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id,
		       title,
		       left(content, 200) AS summary,
		       author,
		       ts_rank(search_vector, query) AS score
		FROM articles, websearch_to_tsquery('simple', $1) AS query
		WHERE search_vector @@ query
		ORDER BY score DESC, id DESC
		LIMIT $2
	`, keywords, limit)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var hit domain.SearchResult
		if err := rows.Scan(&hit.ID, &hit.Title, &hit.Summary, &hit.Author, &hit.Score); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		results = append(results, hit)
	}
	return results, rows.Err()
}
