package domain

import (
	"strconv"
	"time"
)

// Article represents an article entity as persisted.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Source      string    `json:"source"`
	PublishTime time.Time `json:"publish_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResult is a lightweight hit returned by the search index.
// It is a distinct type from Article: it originates from a different
// store and carries only the denormalized fields the index holds.
type SearchResult struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Author  string  `json:"author"`
	Score   float64 `json:"score"`
}

// ArticleView is the API-facing projection of an article, optionally
// enriched with per-user annotations. The id is string-encoded so
// clients never lose precision on 64-bit ids. Grade is nil when the
// viewer has not graded the article (or is anonymous).
type ArticleView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Author      string   `json:"author,omitempty"`
	Source      string   `json:"source,omitempty"`
	PublishTime string   `json:"publish_time,omitempty"`
	Pinned      bool     `json:"pinned"`
	Grade       *float64 `json:"grade,omitempty"`
}

// NewArticleView builds a view carrying only the base article fields.
func NewArticleView(a Article) ArticleView {
	view := ArticleView{
		ID:      strconv.FormatInt(a.ID, 10),
		Title:   a.Title,
		Content: a.Content,
		Author:  a.Author,
		Source:  a.Source,
	}
	if !a.PublishTime.IsZero() {
		view.PublishTime = a.PublishTime.Format(time.RFC3339)
	}
	return view
}

// NewSearchResultView builds a view from a search index hit.
func NewSearchResultView(r SearchResult) ArticleView {
	return ArticleView{
		ID:      strconv.FormatInt(r.ID, 10),
		Title:   r.Title,
		Summary: r.Summary,
		Author:  r.Author,
	}
}
