package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"motor-backend/internal/domain"
	"motor-backend/internal/logger"
	"motor-backend/internal/metrics"
	"motor-backend/internal/repository"
)

// ArticleService handles article search and placeholder generation.
type ArticleService struct {
	articles  repository.ArticleRepository
	search    repository.SearchRepository
	behaviors repository.BehaviorRepository
	enricher  *Enricher

	searchLimit  int
	maxGenerated int
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articles repository.ArticleRepository,
	search repository.SearchRepository,
	behaviors repository.BehaviorRepository,
	enricher *Enricher,
	searchLimit int,
	maxGenerated int,
) *ArticleService {
	return &ArticleService{
		articles:     articles,
		search:       search,
		behaviors:    behaviors,
		enricher:     enricher,
		searchLimit:  searchLimit,
		maxGenerated: maxGenerated,
	}
}

// Search runs a full-text search and enriches the hits for the viewer.
// For authenticated viewers every hit is recorded as a search event;
// recording is fire-and-forget and never blocks the response.
func (s *ArticleService) Search(ctx context.Context, viewer domain.Viewer, keywords string) ([]domain.ArticleView, error) {
	viewerLabel := metrics.ViewerLabel(viewer.Authenticated)
	timer := metrics.NewTimer()

	hits, err := s.search.Search(ctx, keywords, s.searchLimit)
	if err != nil {
		metrics.ObserveSearch(viewerLabel, "error", timer.Elapsed(), 0)
		return nil, fmt.Errorf("search: %w", err)
	}
	metrics.ObserveSearch(viewerLabel, "success", timer.Elapsed(), len(hits))

	if !viewer.Anonymous() {
		if err := s.behaviors.RecordSearch(ctx, viewer.UserID, hits); err != nil {
			metrics.RecordBehaviorEvent(string(domain.ActionSearch), "failure")
			logger.Warn("Failed to record search events",
				slog.Int64("user_id", viewer.UserID),
				slog.String("error", err.Error()))
		} else {
			metrics.RecordBehaviorEvent(string(domain.ActionSearch), "success")
		}
	}

	return s.enricher.EnrichSearchResults(ctx, viewer, hits)
}

// Generate bulk-creates count placeholder articles. Operational/test
// endpoint; the count is capped by configuration.
func (s *ArticleService) Generate(ctx context.Context, count int) (int, error) {
	if count < 1 {
		return 0, &domain.Error{Code: domain.CodeInvalidInput, Message: "count must be at least 1"}
	}
	if count > s.maxGenerated {
		return 0, &domain.Error{Code: domain.CodeInvalidInput, Message: fmt.Sprintf("count must not exceed %d", s.maxGenerated)}
	}

	now := time.Now()
	articles := make([]domain.Article, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, domain.Article{
			Title:       fmt.Sprintf("Placeholder article %s", uuid.New().String()[:8]),
			Content:     "Generated placeholder content for testing and load checks.",
			Author:      "generator",
			Source:      "internal",
			PublishTime: now,
		})
	}

	inserted, err := s.articles.BulkInsert(ctx, articles)
	if err != nil {
		return 0, fmt.Errorf("generate articles: %w", err)
	}
	return inserted, nil
}
