package repository

import (
	"context"

	"motor-backend/internal/domain"
)

// UserRepository defines methods for user data access.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	// GetByIDs returns the articles for the given ids, preserving the
	// input order. Missing ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error)
	// BulkInsert inserts articles and returns the number inserted.
	BulkInsert(ctx context.Context, articles []domain.Article) (int, error)
}

// SearchRepository is the contract to the full-text search index.
type SearchRepository interface {
	Search(ctx context.Context, keywords string, limit int) ([]domain.SearchResult, error)
}

// PinRepository defines methods for per-(user, article) pin flags.
type PinRepository interface {
	Get(ctx context.Context, userID, articleID int64) (*domain.Pin, error)
	Set(ctx context.Context, userID, articleID int64) error
	Remove(ctx context.Context, userID, articleID int64) error
	// ListArticleIDs returns the pinned article ids for a user, most
	// recently pinned first.
	ListArticleIDs(ctx context.Context, userID int64) ([]int64, error)
}

// GradeRepository defines methods for per-(user, article) grades.
type GradeRepository interface {
	Get(ctx context.Context, userID, articleID int64) (*domain.Grade, error)
	Upsert(ctx context.Context, userID, articleID int64, grade float64) error
	// ListByUser returns the user's grades, most recently updated first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Grade, error)
}

// BehaviorRepository defines methods for behavior event tracking.
type BehaviorRepository interface {
	Record(ctx context.Context, userID, articleID int64, action domain.BehaviorAction) error
	// RecordSearch records one search event per hit in a single batch.
	RecordSearch(ctx context.Context, userID int64, results []domain.SearchResult) error
	// ClickedArticleIDs returns distinct clicked article ids, most
	// recently clicked first.
	ClickedArticleIDs(ctx context.Context, userID int64) ([]int64, error)
}

// SessionRepository defines methods for server-side session storage.
type SessionRepository interface {
	Create(ctx context.Context, token string) (*domain.Session, error)
	Get(ctx context.Context, token string) (*domain.Session, error)
	SetUser(ctx context.Context, token string, userID int64) error
	ClearUser(ctx context.Context, token string) error
	// DeleteIdle removes sessions not touched for the given number of
	// seconds and returns how many were removed.
	DeleteIdle(ctx context.Context, idleSeconds int64) (int64, error)
}
