package domain

import "time"

// Session is a server-side session row keyed by the opaque token the
// client carries in its cookie. UserID is nil while the session is
// anonymous.
type Session struct {
	Token     string    `json:"token"`
	UserID    *int64    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Viewer derives the request viewer from the session state.
func (s *Session) Viewer() Viewer {
	if s == nil || s.UserID == nil || *s.UserID == 0 {
		return AnonymousViewer()
	}
	return AuthenticatedViewer(*s.UserID)
}
