package service

import (
	"context"
	"fmt"

	"motor-backend/internal/domain"
	"motor-backend/internal/metrics"
	"motor-backend/internal/repository"
)

// Enricher decorates article views with the viewer's pin and grade
// annotations. It is read-only and order-preserving: views come back
// in the order the articles went in. For anonymous viewers no lookups
// are performed and views carry only base fields.
type Enricher struct {
	pins   repository.PinRepository
	grades repository.GradeRepository
}

// NewEnricher creates a new Enricher.
func NewEnricher(pins repository.PinRepository, grades repository.GradeRepository) *Enricher {
	return &Enricher{pins: pins, grades: grades}
}

// Pinned reports whether the viewer pinned the article. A pin record
// carrying a zero article id is treated as no annotation.
func (e *Enricher) Pinned(ctx context.Context, viewer domain.Viewer, articleID int64) (bool, error) {
	if viewer.Anonymous() {
		return false, nil
	}
	pin, err := e.pins.Get(ctx, viewer.UserID, articleID)
	if err != nil {
		return false, fmt.Errorf("pin lookup: %w", err)
	}
	return pin != nil && pin.ArticleID != 0, nil
}

// GradeFor returns the viewer's grade on the article, or nil when
// ungraded. A grade record carrying a zero article id is treated as no
// annotation.
func (e *Enricher) GradeFor(ctx context.Context, viewer domain.Viewer, articleID int64) (*float64, error) {
	if viewer.Anonymous() {
		return nil, nil
	}
	grade, err := e.grades.Get(ctx, viewer.UserID, articleID)
	if err != nil {
		return nil, fmt.Errorf("grade lookup: %w", err)
	}
	if grade == nil || grade.ArticleID == 0 {
		return nil, nil
	}
	value := grade.Grade
	return &value, nil
}

// EnrichArticles maps articles to views with both annotations attached.
func (e *Enricher) EnrichArticles(ctx context.Context, viewer domain.Viewer, articles []domain.Article, source string) ([]domain.ArticleView, error) {
	timer := metrics.NewTimer()

	views := make([]domain.ArticleView, 0, len(articles))
	for _, article := range articles {
		view := domain.NewArticleView(article)
		if err := e.annotate(ctx, viewer, &view, article.ID); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	metrics.ObserveEnrichment(source, len(articles), timer.Elapsed())
	return views, nil
}

// EnrichSearchResults maps search hits to views with both annotations
// attached.
func (e *Enricher) EnrichSearchResults(ctx context.Context, viewer domain.Viewer, results []domain.SearchResult) ([]domain.ArticleView, error) {
	timer := metrics.NewTimer()

	views := make([]domain.ArticleView, 0, len(results))
	for _, hit := range results {
		view := domain.NewSearchResultView(hit)
		if err := e.annotate(ctx, viewer, &view, hit.ID); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	metrics.ObserveEnrichment("search", len(results), timer.Elapsed())
	return views, nil
}

func (e *Enricher) annotate(ctx context.Context, viewer domain.Viewer, view *domain.ArticleView, articleID int64) error {
	if viewer.Anonymous() {
		return nil
	}

	pinned, err := e.Pinned(ctx, viewer, articleID)
	if err != nil {
		return err
	}
	view.Pinned = pinned

	grade, err := e.GradeFor(ctx, viewer, articleID)
	if err != nil {
		return err
	}
	view.Grade = grade

	return nil
}
