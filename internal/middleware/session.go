package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"motor-backend/internal/domain"
	"motor-backend/internal/logger"
	"motor-backend/internal/metrics"
)

const (
	// SessionKey is the context key for the resolved session
	SessionKey = "session"
	// ViewerKey is the context key for the resolved viewer
	ViewerKey = "viewer"
)

// SessionResolver looks up the server-side session for an opaque
// cookie token. A nil session (no error) means the token is unknown.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Session resolves the session cookie into a Viewer for every request.
// Resolution never fails the request: a missing cookie, an unknown
// token, or a resolver error all yield an anonymous viewer.
func Session(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := domain.AnonymousViewer()

		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			session, err := resolver.Resolve(c.Request.Context(), token)
			switch {
			case err != nil:
				logger.Warn("Failed to resolve session",
					slog.String("request_id", GetRequestID(c)),
					slog.String("error", err.Error()))
			case session != nil:
				c.Set(SessionKey, session)
				viewer = session.Viewer()
			}
		}

		c.Set(ViewerKey, viewer)
		metrics.SessionsResolvedTotal.WithLabelValues(metrics.ViewerLabel(viewer.Authenticated)).Inc()

		c.Next()
	}
}

// GetSession retrieves the resolved session from the gin context.
// Returns nil when the request carried no valid session cookie.
func GetSession(c *gin.Context) *domain.Session {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(*domain.Session); ok {
			return session
		}
	}
	return nil
}

// GetViewer retrieves the resolved viewer from the gin context.
func GetViewer(c *gin.Context) domain.Viewer {
	if v, exists := c.Get(ViewerKey); exists {
		if viewer, ok := v.(domain.Viewer); ok {
			return viewer
		}
	}
	return domain.AnonymousViewer()
}
