package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// GetByID fetches an article by id. Returns (nil, nil) when absent.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, content, author, source, publish_time, created_at
		FROM articles
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Source, &a.PublishTime, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article by id: %w", err)
	}
	return &a, nil
}

// GetByIDs fetches articles for the given ids, preserving the input
// order. Ids without a matching row are skipped.
func (r *PostgresArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.title, a.content, a.author, a.source, a.publish_time, a.created_at
		FROM unnest($1::bigint[]) WITH ORDINALITY AS t(id, ord)
		JOIN articles a ON a.id = t.id
		ORDER BY t.ord
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("query articles by ids: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, len(ids))
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Source, &a.PublishTime, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// BulkInsert inserts articles with COPY and returns the number inserted.
func (r *PostgresArticleRepository) BulkInsert(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []interface{}{a.Title, a.Content, a.Author, a.Source, a.PublishTime})
	}

	count, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"articles"},
		[]string{"title", "content", "author", "source", "publish_time"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy articles: %w", err)
	}
	return int(count), nil
}
