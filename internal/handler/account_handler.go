package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

// AccountHandler serves the user-accounts administration screen.
type AccountHandler struct {
	accounts *service.AccountService
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(accounts *service.AccountService, sessions *session.Manager, logger *zap.Logger) *AccountHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountHandler{accounts: accounts, sessions: sessions, logger: logger}
}

// Page renders the account list with the student and lecturer lookups.
func (h *AccountHandler) Page(c *gin.Context) {
	page, err := h.accounts.Page(c.Request.Context())
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "user_accounts.tmpl", viewData(c, h.sessions, gin.H{"Page": page}))
}

// Mutate dispatches the posted action and redirects back to the list.
func (h *AccountHandler) Mutate(c *gin.Context) {
	var err error
	var success string

	switch c.PostForm("action") {
	case "create":
		var req service.CreateAccountRequest
		if bindErr := c.ShouldBind(&req); bindErr != nil {
			err = appErrors.Clone(appErrors.ErrValidation, "Username, password and role are required.")
			break
		}
		err = h.accounts.Create(c.Request.Context(), req)
		success = "Account created."
	case "reset":
		var req service.ResetPasswordRequest
		if bindErr := c.ShouldBind(&req); bindErr != nil {
			err = appErrors.Clone(appErrors.ErrValidation, "Select a user and enter a new password.")
			break
		}
		err = h.accounts.ResetPassword(c.Request.Context(), req)
		success = "Password updated."
	case "delete":
		err = h.accounts.Delete(c.Request.Context(), c.PostForm("user_id"))
		success = "Account deleted."
	default:
		err = appErrors.Clone(appErrors.ErrValidation, "Unknown action.")
	}

	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/user-accounts")
		return
	}
	redirectWithSuccess(c, h.sessions, success, "/user-accounts")
}
