package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"motor-backend/internal/domain"
	"motor-backend/internal/middleware"
	"motor-backend/internal/service"
)

// ArticleHandler handles article search, generation and behavior
// writes.
type ArticleHandler struct {
	articleService  service.ArticleServiceInterface
	behaviorService service.BehaviorServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface, behaviorService service.BehaviorServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService:  articleService,
		behaviorService: behaviorService,
	}
}

// Search handles GET /motor/article/search?keywords=.
func (h *ArticleHandler) Search(c *gin.Context) {
	keywords := strings.TrimSpace(c.Query("keywords"))
	if keywords == "" {
		respondError(c, &domain.Error{Code: domain.CodeInvalidInput, Message: "keywords is required"})
		return
	}

	views, err := h.articleService.Search(c.Request.Context(), middleware.GetViewer(c), keywords)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

// AddArticle handles GET /motor/article/addArticle?count=. Test and
// operations endpoint for seeding placeholder content.
func (h *ArticleHandler) AddArticle(c *gin.Context) {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil {
		respondError(c, &domain.Error{Code: domain.CodeInvalidInput, Message: "count must be an integer"})
		return
	}

	inserted, err := h.articleService.Generate(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"inserted": inserted})
}

type clickRequest struct {
	ArticleID int64 `json:"article_id"`
}

// Click handles POST /motor/article/click: records a click event.
func (h *ArticleHandler) Click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ArticleID <= 0 {
		respondError(c, &domain.Error{Code: domain.CodeInvalidInput, Message: "article_id is required"})
		return
	}

	if err := h.behaviorService.RecordClick(c.Request.Context(), middleware.GetViewer(c), req.ArticleID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

type pinRequest struct {
	ArticleID int64 `json:"article_id"`
	Pinned    *bool `json:"pinned"`
}

// Pin handles POST /motor/article/pin: sets or removes the viewer's
// pin on an article. Idempotent in both directions.
func (h *ArticleHandler) Pin(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ArticleID <= 0 || req.Pinned == nil {
		respondError(c, &domain.Error{Code: domain.CodeInvalidInput, Message: "article_id and pinned are required"})
		return
	}

	if err := h.behaviorService.SetPin(c.Request.Context(), middleware.GetViewer(c), req.ArticleID, *req.Pinned); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

type gradeRequest struct {
	ArticleID int64    `json:"article_id"`
	Grade     *float64 `json:"grade"`
}

// Grade handles POST /motor/article/grade: upserts the viewer's grade
// on an article. Last write wins.
func (h *ArticleHandler) Grade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ArticleID <= 0 || req.Grade == nil {
		respondError(c, &domain.Error{Code: domain.CodeInvalidInput, Message: "article_id and grade are required"})
		return
	}

	if err := h.behaviorService.SetGrade(c.Request.Context(), middleware.GetViewer(c), req.ArticleID, *req.Grade); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
