package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"motor-backend/internal/domain"
	"motor-backend/internal/metrics"
	"motor-backend/internal/middleware"
	"motor-backend/internal/service"
	"motor-backend/internal/validator"
)

// CookieSettings controls the session cookie issued on login and
// registration.
type CookieSettings struct {
	Name   string
	MaxAge int
	Secure bool
}

// UserHandler handles account and per-user history HTTP requests.
type UserHandler struct {
	userService     service.UserServiceInterface
	sessionService  service.SessionServiceInterface
	behaviorService service.BehaviorServiceInterface
	cookie          CookieSettings
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService service.UserServiceInterface,
	sessionService service.SessionServiceInterface,
	behaviorService service.BehaviorServiceInterface,
	cookie CookieSettings,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		sessionService:  sessionService,
		behaviorService: behaviorService,
		cookie:          cookie,
	}
}

// Login handles POST /motor/user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var creds validator.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		metrics.RecordLogin("failure")
		respondError(c, domain.ErrInvalidInput)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), &creds)
	if err != nil {
		metrics.RecordLogin("failure")
		respondError(c, err)
		return
	}

	if err := h.bindSession(c, user.ID); err != nil {
		metrics.RecordLogin("failure")
		respondError(c, err)
		return
	}

	metrics.RecordLogin("success")
	respondOK(c, nil)
}

// Register handles POST /motor/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var creds validator.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondError(c, domain.ErrInvalidInput)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &creds)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.bindSession(c, user.ID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// IsLogin handles POST /motor/user/is_login. It never fails: an
// unresolvable session simply reads as logged out.
func (h *UserHandler) IsLogin(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	respondOK(c, gin.H{"is_login": viewer.Authenticated})
}

// Exit handles POST /motor/user/exit. Logging out without a live
// session is an error, not a no-op.
func (h *UserHandler) Exit(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		respondError(c, domain.ErrNoUser)
		return
	}

	if err := h.sessionService.ClearUser(c.Request.Context(), session.Token); err != nil {
		respondError(c, fmt.Errorf("clear session: %w", err))
		return
	}

	respondOK(c, nil)
}

// Click handles GET /motor/user/click: the viewer's clicked articles.
func (h *UserHandler) Click(c *gin.Context) {
	views, err := h.behaviorService.ClickedArticles(c.Request.Context(), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

// Pin handles GET /motor/user/pin: the viewer's pinned articles.
func (h *UserHandler) Pin(c *gin.Context) {
	views, err := h.behaviorService.PinnedArticles(c.Request.Context(), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

// Grade handles GET /motor/user/grade: the viewer's graded articles.
func (h *UserHandler) Grade(c *gin.Context) {
	views, err := h.behaviorService.GradedArticles(c.Request.Context(), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

// bindSession attaches the user to the request's session, creating the
// session and issuing the cookie when the request carried none.
func (h *UserHandler) bindSession(c *gin.Context, userID int64) error {
	session := middleware.GetSession(c)
	if session == nil {
		created, err := h.sessionService.Start(c.Request.Context())
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		session = created
		c.SetCookie(h.cookie.Name, session.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	}

	if err := h.sessionService.BindUser(c.Request.Context(), session.Token, userID); err != nil {
		return fmt.Errorf("bind session: %w", err)
	}
	return nil
}
