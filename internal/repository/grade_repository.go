package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motor-backend/internal/domain"
)

// PostgresGradeRepository implements GradeRepository using PostgreSQL.
type PostgresGradeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGradeRepository creates a new PostgresGradeRepository.
func NewPostgresGradeRepository(pool *pgxpool.Pool) *PostgresGradeRepository {
	return &PostgresGradeRepository{pool: pool}
}

// Get fetches the grade for (userID, articleID). Returns (nil, nil)
// when the article is ungraded.
func (r *PostgresGradeRepository) Get(ctx context.Context, userID, articleID int64) (*domain.Grade, error) {
	var g domain.Grade
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, article_id, grade, updated_at
		FROM user_grades
		WHERE user_id = $1 AND article_id = $2
	`, userID, articleID).Scan(&g.UserID, &g.ArticleID, &g.Grade, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query grade: %w", err)
	}
	return &g, nil
}

// Upsert sets the grade for (userID, articleID). Last write wins.
func (r *PostgresGradeRepository) Upsert(ctx context.Context, userID, articleID int64, grade float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_grades (user_id, article_id, grade)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id)
		DO UPDATE SET grade = EXCLUDED.grade, updated_at = NOW()
	`, userID, articleID, grade)
	if err != nil {
		return fmt.Errorf("upsert grade: %w", err)
	}
	return nil
}

// ListByUser returns the user's grades, most recently updated first.
func (r *PostgresGradeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Grade, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, article_id, grade, updated_at
		FROM user_grades
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query grades: %w", err)
	}
	defer rows.Close()

	var grades []domain.Grade
	for rows.Next() {
		var g domain.Grade
		if err := rows.Scan(&g.UserID, &g.ArticleID, &g.Grade, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
