package domain

import "time"

// Pin marks an article as bookmarked by a user. Existence of the
// record is the flag; there is no separate boolean column.
type Pin struct {
	UserID    int64     `json:"user_id"`
	ArticleID int64     `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Grade is a user-assigned rating on an article. Writes are
// last-write-wins per (user, article).
type Grade struct {
	UserID    int64     `json:"user_id"`
	ArticleID int64     `json:"article_id"`
	Grade     float64   `json:"grade"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BehaviorAction enumerates the tracked user actions.
type BehaviorAction string

const (
	ActionSearch BehaviorAction = "search"
	ActionClick  BehaviorAction = "click"
)

// ValidActions contains all tracked behavior actions.
var ValidActions = []BehaviorAction{ActionSearch, ActionClick}

// IsValidAction checks if an action is tracked.
func IsValidAction(action BehaviorAction) bool {
	for _, a := range ValidActions {
		if a == action {
			return true
		}
	}
	return false
}

// Behavior is one tracked user action against an article.
type Behavior struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	ArticleID int64          `json:"article_id"`
	Action    BehaviorAction `json:"action"`
	CreatedAt time.Time      `json:"created_at"`
}
