package service

import (
	"context"
	"fmt"

	"motor-backend/internal/domain"
	"motor-backend/internal/metrics"
	"motor-backend/internal/repository"
	"motor-backend/internal/validator"
)

// BehaviorService serves per-user history lists and behavior writes.
// Every operation requires an authenticated viewer.
type BehaviorService struct {
	articles  repository.ArticleRepository
	pins      repository.PinRepository
	grades    repository.GradeRepository
	behaviors repository.BehaviorRepository
	enricher  *Enricher
	validator *validator.Validator
}

// NewBehaviorService creates a new BehaviorService.
func NewBehaviorService(
	articles repository.ArticleRepository,
	pins repository.PinRepository,
	grades repository.GradeRepository,
	behaviors repository.BehaviorRepository,
	enricher *Enricher,
	v *validator.Validator,
) *BehaviorService {
	return &BehaviorService{
		articles:  articles,
		pins:      pins,
		grades:    grades,
		behaviors: behaviors,
		enricher:  enricher,
		validator: v,
	}
}

// ClickedArticles returns the viewer's clicked articles with pin and
// grade annotations.
func (s *BehaviorService) ClickedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error) {
	if viewer.Anonymous() {
		return nil, domain.ErrNoUser
	}

	ids, err := s.behaviors.ClickedArticleIDs(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("clicked articles: %w", err)
	}

	articles, err := s.articles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("clicked articles: %w", err)
	}

	return s.enricher.EnrichArticles(ctx, viewer, articles, "click")
}

// PinnedArticles returns the viewer's pinned articles. The list is
// definitionally the pinned set, so every view carries pinned=true
// without a per-item pin lookup; grades are looked up as usual.
func (s *BehaviorService) PinnedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error) {
	if viewer.Anonymous() {
		return nil, domain.ErrNoUser
	}

	ids, err := s.pins.ListArticleIDs(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("pinned articles: %w", err)
	}

	articles, err := s.articles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("pinned articles: %w", err)
	}

	timer := metrics.NewTimer()
	views := make([]domain.ArticleView, 0, len(articles))
	for _, article := range articles {
		view := domain.NewArticleView(article)
		view.Pinned = true

		grade, err := s.enricher.GradeFor(ctx, viewer, article.ID)
		if err != nil {
			return nil, err
		}
		view.Grade = grade

		views = append(views, view)
	}
	metrics.ObserveEnrichment("pin", len(articles), timer.Elapsed())

	return views, nil
}

// GradedArticles returns the viewer's graded articles. The grade comes
// from the grade record itself; pins are looked up per item. Grade
// records pointing at missing or zero article ids are skipped.
func (s *BehaviorService) GradedArticles(ctx context.Context, viewer domain.Viewer) ([]domain.ArticleView, error) {
	if viewer.Anonymous() {
		return nil, domain.ErrNoUser
	}

	grades, err := s.grades.ListByUser(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("graded articles: %w", err)
	}

	ids := make([]int64, 0, len(grades))
	for _, g := range grades {
		if g.ArticleID != 0 {
			ids = append(ids, g.ArticleID)
		}
	}

	articles, err := s.articles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("graded articles: %w", err)
	}
	byID := make(map[int64]domain.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	timer := metrics.NewTimer()
	views := make([]domain.ArticleView, 0, len(grades))
	for _, g := range grades {
		article, ok := byID[g.ArticleID]
		if !ok {
			continue
		}

		view := domain.NewArticleView(article)
		value := g.Grade
		view.Grade = &value

		pinned, err := s.enricher.Pinned(ctx, viewer, g.ArticleID)
		if err != nil {
			return nil, err
		}
		view.Pinned = pinned

		views = append(views, view)
	}
	metrics.ObserveEnrichment("grade", len(views), timer.Elapsed())

	return views, nil
}

// RecordClick records a click on an article.
func (s *BehaviorService) RecordClick(ctx context.Context, viewer domain.Viewer, articleID int64) error {
	if viewer.Anonymous() {
		return domain.ErrNoUser
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	if article == nil {
		return &domain.Error{Code: domain.CodeInvalidInput, Message: "article not found"}
	}

	if err := s.behaviors.Record(ctx, viewer.UserID, articleID, domain.ActionClick); err != nil {
		metrics.RecordBehaviorEvent(string(domain.ActionClick), "failure")
		return fmt.Errorf("record click: %w", err)
	}
	metrics.RecordBehaviorEvent(string(domain.ActionClick), "success")
	return nil
}

// SetPin pins or unpins an article. Both directions are idempotent.
func (s *BehaviorService) SetPin(ctx context.Context, viewer domain.Viewer, articleID int64, pinned bool) error {
	if viewer.Anonymous() {
		return domain.ErrNoUser
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("set pin: %w", err)
	}
	if article == nil {
		return &domain.Error{Code: domain.CodeInvalidInput, Message: "article not found"}
	}

	if pinned {
		err = s.pins.Set(ctx, viewer.UserID, articleID)
	} else {
		err = s.pins.Remove(ctx, viewer.UserID, articleID)
	}
	if err != nil {
		return fmt.Errorf("set pin: %w", err)
	}
	return nil
}

// SetGrade upserts the viewer's grade on an article. Last write wins.
func (s *BehaviorService) SetGrade(ctx context.Context, viewer domain.Viewer, articleID int64, grade float64) error {
	if viewer.Anonymous() {
		return domain.ErrNoUser
	}
	if err := s.validator.ValidateGrade(grade); err != nil {
		return &domain.Error{Code: domain.CodeInvalidInput, Message: err.Error()}
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("set grade: %w", err)
	}
	if article == nil {
		return &domain.Error{Code: domain.CodeInvalidInput, Message: "article not found"}
	}

	if err := s.grades.Upsert(ctx, viewer.UserID, articleID, grade); err != nil {
		return fmt.Errorf("set grade: %w", err)
	}
	return nil
}
