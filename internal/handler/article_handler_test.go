package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"motor-backend/internal/domain"
	"motor-backend/internal/mocks"
)

func TestArticleHandler_Search(t *testing.T) {
	t.Run("returns enriched results", func(t *testing.T) {
		mockArticleService := mocks.NewMockArticleServiceInterface(t)
		mockBehaviorService := mocks.NewMockBehaviorServiceInterface(t)
		handler := NewArticleHandler(mockArticleService, mockBehaviorService)

		userID := int64(7)
		session := &domain.Session{Token: uuid.New().String(), UserID: &userID}
		grade := 3.5
		mockArticleService.EXPECT().
			Search(mock.Anything, domain.AuthenticatedViewer(7), "engine oil").
			Return([]domain.ArticleView{
				{ID: "1", Title: "Engine oil guide", Pinned: true, Grade: &grade},
			}, nil)

		router := gin.New()
		router.Use(withSession(session))
		router.GET("/motor/article/search", handler.Search)

		req := httptest.NewRequest(http.MethodGet, "/motor/article/search?keywords=engine+oil", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data, ok := resp.Data.([]interface{})
		require.True(t, ok)
		require.Len(t, data, 1)
		first, ok := data[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "1", first["id"])
		assert.Equal(t, true, first["pinned"])
	})

	t.Run("requires keywords", func(t *testing.T) {
		handler := NewArticleHandler(
			mocks.NewMockArticleServiceInterface(t),
			mocks.NewMockBehaviorServiceInterface(t),
		)

		router := gin.New()
		router.Use(withSession(nil))
		router.GET("/motor/article/search", handler.Search)

		for _, target := range []string{"/motor/article/search", "/motor/article/search?keywords=+++"} {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "invalid_input", resp.Error.Code)
		}
	})

	t.Run("hides store errors behind internal_error", func(t *testing.T) {
		mockArticleService := mocks.NewMockArticleServiceInterface(t)
		handler := NewArticleHandler(mockArticleService, mocks.NewMockBehaviorServiceInterface(t))

		mockArticleService.EXPECT().
			Search(mock.Anything, domain.AnonymousViewer(), "engine").
			Return(nil, assert.AnError)

		router := gin.New()
		router.Use(withSession(nil))
		router.GET("/motor/article/search", handler.Search)

		req := httptest.NewRequest(http.MethodGet, "/motor/article/search?keywords=engine", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "internal_error", resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
	})
}

func TestArticleHandler_AddArticle(t *testing.T) {
	t.Run("generates the requested count", func(t *testing.T) {
		mockArticleService := mocks.NewMockArticleServiceInterface(t)
		handler := NewArticleHandler(mockArticleService, mocks.NewMockBehaviorServiceInterface(t))

		mockArticleService.EXPECT().
			Generate(mock.Anything, 25).
			Return(25, nil)

		router := gin.New()
		router.Use(withSession(nil))
		router.GET("/motor/article/addArticle", handler.AddArticle)

		req := httptest.NewRequest(http.MethodGet, "/motor/article/addArticle?count=25", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(25), data["inserted"])
	})

	t.Run("rejects missing or non-numeric count", func(t *testing.T) {
		handler := NewArticleHandler(
			mocks.NewMockArticleServiceInterface(t),
			mocks.NewMockBehaviorServiceInterface(t),
		)

		router := gin.New()
		router.Use(withSession(nil))
		router.GET("/motor/article/addArticle", handler.AddArticle)

		for _, target := range []string{"/motor/article/addArticle", "/motor/article/addArticle?count=ten"} {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}

func TestArticleHandler_BehaviorWrites(t *testing.T) {
	userID := int64(7)
	session := &domain.Session{Token: uuid.New().String(), UserID: &userID}
	viewer := domain.AuthenticatedViewer(7)

	postJSON := func(router *gin.Engine, target string, payload interface{}) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("records a click", func(t *testing.T) {
		mockBehaviorService := mocks.NewMockBehaviorServiceInterface(t)
		handler := NewArticleHandler(mocks.NewMockArticleServiceInterface(t), mockBehaviorService)

		mockBehaviorService.EXPECT().
			RecordClick(mock.Anything, viewer, int64(3)).
			Return(nil)

		router := gin.New()
		router.Use(withSession(session))
		router.POST("/motor/article/click", handler.Click)

		w := postJSON(router, "/motor/article/click", map[string]interface{}{"article_id": 3})

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResponse(t, w).Success)
	})

	t.Run("rejects click without article_id", func(t *testing.T) {
		handler := NewArticleHandler(
			mocks.NewMockArticleServiceInterface(t),
			mocks.NewMockBehaviorServiceInterface(t),
		)

		router := gin.New()
		router.Use(withSession(session))
		router.POST("/motor/article/click", handler.Click)

		w := postJSON(router, "/motor/article/click", map[string]interface{}{})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sets and removes a pin", func(t *testing.T) {
		mockBehaviorService := mocks.NewMockBehaviorServiceInterface(t)
		handler := NewArticleHandler(mocks.NewMockArticleServiceInterface(t), mockBehaviorService)

		mockBehaviorService.EXPECT().
			SetPin(mock.Anything, viewer, int64(3), true).
			Return(nil)
		mockBehaviorService.EXPECT().
			SetPin(mock.Anything, viewer, int64(3), false).
			Return(nil)

		router := gin.New()
		router.Use(withSession(session))
		router.POST("/motor/article/pin", handler.Pin)

		w := postJSON(router, "/motor/article/pin", map[string]interface{}{"article_id": 3, "pinned": true})
		require.Equal(t, http.StatusOK, w.Code)

		w = postJSON(router, "/motor/article/pin", map[string]interface{}{"article_id": 3, "pinned": false})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects pin without the pinned flag", func(t *testing.T) {
		handler := NewArticleHandler(
			mocks.NewMockArticleServiceInterface(t),
			mocks.NewMockBehaviorServiceInterface(t),
		)

		router := gin.New()
		router.Use(withSession(session))
		router.POST("/motor/article/pin", handler.Pin)

		w := postJSON(router, "/motor/article/pin", map[string]interface{}{"article_id": 3})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upserts a grade including zero", func(t *testing.T) {
		mockBehaviorService := mocks.NewMockBehaviorServiceInterface(t)
		handler := NewArticleHandler(mocks.NewMockArticleServiceInterface(t), mockBehaviorService)

		mockBehaviorService.EXPECT().
			SetGrade(mock.Anything, viewer, int64(3), 0.0).
			Return(nil)

		router := gin.New()
		router.Use(withSession(session))
		router.POST("/motor/article/grade", handler.Grade)

		w := postJSON(router, "/motor/article/grade", map[string]interface{}{"article_id": 3, "grade": 0})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous writes surface no_user", func(t *testing.T) {
		mockBehaviorService := mocks.NewMockBehaviorServiceInterface(t)
		handler := NewArticleHandler(mocks.NewMockArticleServiceInterface(t), mockBehaviorService)

		mockBehaviorService.EXPECT().
			RecordClick(mock.Anything, domain.AnonymousViewer(), int64(3)).
			Return(domain.ErrNoUser)

		router := gin.New()
		router.Use(withSession(nil))
		router.POST("/motor/article/click", handler.Click)

		w := postJSON(router, "/motor/article/click", map[string]interface{}{"article_id": 3})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "no_user", resp.Error.Code)
	})
}
