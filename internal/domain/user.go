package domain

import "time"

// User represents a registered account.
// PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Viewer identifies who is making a request. It replaces the legacy
// "user id 0 means anonymous" sentinel with an explicit tag: the zero
// value is an anonymous viewer.
type Viewer struct {
	UserID        int64
	Authenticated bool
}

// AnonymousViewer returns a viewer with no authenticated user.
func AnonymousViewer() Viewer {
	return Viewer{}
}

// AuthenticatedViewer returns a viewer bound to a user id.
func AuthenticatedViewer(userID int64) Viewer {
	return Viewer{UserID: userID, Authenticated: true}
}

// Anonymous reports whether the viewer has no authenticated user.
func (v Viewer) Anonymous() bool {
	return !v.Authenticated
}
