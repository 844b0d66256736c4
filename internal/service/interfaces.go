package service

import (
	"context"

	"motor-backend/internal/domain"
	"motor-backend/internal/validator"
)

// UserServiceInterface defines the interface for account operations.
// Used for dependency injection and mocking in tests.
type UserServiceInterface interface {
	// Register creates a new account from credentials.
	Register(ctx context.Context, creds *validator.Credentials) (*domain.User, error)
	// Authenticate verifies credentials and returns the account.
	Authenticate(ctx context.Context, creds *validator.Credentials) (*domain.User, error)
}

// SessionServiceInterface defines the interface for session lifecycle
// operations. Resolve also satisfies middleware.SessionResolver.
type SessionServiceInterface interface {
	// Resolve maps a cookie token to its session; (nil, nil) when unknown.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Start creates a fresh anonymous session.
	Start(ctx context.Context) (*domain.Session, error)
	// BindUser attaches an authenticated user to a session.
	BindUser(ctx context.Context, token string, userID int64) error
	// ClearUser detaches the user from a session. Fails when the
	// session does not exist.
	ClearUser(ctx context.Context, token string) error
}

// ArticleServiceInterface defines the interface for article search and
// generation.
type ArticleServiceInterface interface {
	// Search runs a full-text search, records the search events for an
	// authenticated viewer, and returns enriched views.
	Search(ctx context.Context, viewer domain.Viewer, keywords string) ([]domain.ArticleView, error)
	// Generate bulk-creates placeholder articles and returns how many
	// were inserted.
	Generate(ctx context.Context, count int) (int, error)
}

// BehaviorServiceInterface defines the interface for per-user history
// lists and behavior writes.
type BehaviorServiceInterface interface {
	// ClickedArticles returns the viewer's clicked articles, enriched.
	ClickedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error)
	// PinnedArticles returns the viewer's pinned articles, enriched.
	PinnedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error)
	// GradedArticles returns the viewer's graded articles, enriched.
	GradedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error)
	// RecordClick records a click on an article.
	RecordClick(ctx context.Context, viewer domain.Viewer, articleID int64) error
	// SetPin pins or unpins an article.
	SetPin(ctx context.Context, viewer domain.Viewer, articleID int64, pinned bool) error
	// SetGrade upserts the viewer's grade on an article.
	SetGrade(ctx context.Context, viewer domain.Viewer, articleID int64, grade float64) error
}
