package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

// AuthHandler serves the login and logout flows.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	metrics  *service.MetricsService
	logger   *zap.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager, metrics *service.MetricsService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: auth, sessions: sessions, metrics: metrics, logger: logger}
}

// Home redirects to the dashboard when authenticated, otherwise to login.
func (h *AuthHandler) Home(c *gin.Context) {
	if _, err := h.sessions.Load(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm renders the login view.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if _, err := h.sessions.Load(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

// Login authenticates submitted credentials and starts a session. Failed
// attempts re-render the login view and leave the caller anonymous.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || password == "" {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "Please enter username and password."})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		h.metrics.ObserveLogin("failure")
		appErr := appErrors.FromError(err)
		message := appErr.Message
		if appErr.Code == appErrors.ErrInternal.Code {
			h.logger.Error("login failed", zap.Error(err))
			message = "Something went wrong. Please try again."
		}
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": message})
		return
	}

	if err := h.sessions.Issue(c, sess); err != nil {
		h.metrics.ObserveLogin("failure")
		h.logger.Error("failed to issue session", zap.Error(err))
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "Something went wrong. Please try again."})
		return
	}

	h.metrics.ObserveLogin("success")
	h.logger.Info("user logged in",
		zap.Int64("user_id", sess.UserID),
		zap.String("role", string(sess.Role)),
	)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session and returns to the login view.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard renders the role-aware landing page.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.tmpl", viewData(c, h.sessions, gin.H{
		"Roles": gin.H{
			"Admin":    models.RoleAdmin,
			"Staff":    models.RoleStaff,
			"Lecturer": models.RoleLecturer,
			"Student":  models.RoleStudent,
		},
	}))
}
