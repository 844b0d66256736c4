package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"motor-backend/internal/domain"
	"motor-backend/internal/mocks"
	"motor-backend/internal/service"
)

func TestEnricher_EnrichArticles(t *testing.T) {
	ctx := context.Background()

	articles := []domain.Article{
		{ID: 10, Title: "Ten"},
		{ID: 20, Title: "Twenty"},
		{ID: 30, Title: "Thirty"},
	}

	t.Run("anonymous viewer skips all lookups", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)

		views, err := enricher.EnrichArticles(ctx, domain.AnonymousViewer(), articles, "test")

		require.NoError(t, err)
		require.Len(t, views, 3)
		for _, view := range views {
			assert.False(t, view.Pinned)
			assert.Nil(t, view.Grade)
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)
		viewer := domain.AuthenticatedViewer(7)

		for _, a := range articles {
			mockPinRepo.EXPECT().
				Get(mock.Anything, int64(7), a.ID).
				Return(nil, nil)
			mockGradeRepo.EXPECT().
				Get(mock.Anything, int64(7), a.ID).
				Return(nil, nil)
		}

		views, err := enricher.EnrichArticles(ctx, viewer, articles, "test")

		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "10", views[0].ID)
		assert.Equal(t, "20", views[1].ID)
		assert.Equal(t, "30", views[2].ID)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)
		viewer := domain.AuthenticatedViewer(7)

		mockPinRepo.EXPECT().
			Get(mock.Anything, int64(7), int64(10)).
			Return(nil, assert.AnError)

		views, err := enricher.EnrichArticles(ctx, viewer, articles, "test")

		require.Error(t, err)
		assert.Nil(t, views)
	})
}

func TestEnricher_Annotations(t *testing.T) {
	ctx := context.Background()
	viewer := domain.AuthenticatedViewer(7)

	t.Run("pin record with zero article id counts as no pin", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)

		mockPinRepo.EXPECT().
			Get(mock.Anything, int64(7), int64(5)).
			Return(&domain.Pin{UserID: 7, ArticleID: 0}, nil)

		pinned, err := enricher.Pinned(ctx, viewer, 5)

		require.NoError(t, err)
		assert.False(t, pinned)
	})

	t.Run("grade record with zero article id counts as ungraded", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)

		mockGradeRepo.EXPECT().
			Get(mock.Anything, int64(7), int64(5)).
			Return(&domain.Grade{UserID: 7, ArticleID: 0, Grade: 3}, nil)

		grade, err := enricher.GradeFor(ctx, viewer, 5)

		require.NoError(t, err)
		assert.Nil(t, grade)
	})

	t.Run("anonymous viewer never hits the stores", func(t *testing.T) {
		mockPinRepo := mocks.NewMockPinRepository(t)
		mockGradeRepo := mocks.NewMockGradeRepository(t)
		enricher := service.NewEnricher(mockPinRepo, mockGradeRepo)
		anon := domain.AnonymousViewer()

		pinned, err := enricher.Pinned(ctx, anon, 5)
		require.NoError(t, err)
		assert.False(t, pinned)

		grade, err := enricher.GradeFor(ctx, anon, 5)
		require.NoError(t, err)
		assert.Nil(t, grade)
	})
}
