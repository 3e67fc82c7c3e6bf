package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/middleware"
	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

// viewData assembles the common template payload: the session context plus
// any pending flashes, merged with page-specific values.
func viewData(c *gin.Context, sessions *session.Manager, extra gin.H) gin.H {
	data := gin.H{}
	for key, value := range extra {
		data[key] = value
	}
	if sess := middleware.SessionFromContext(c); sess != nil {
		data["Session"] = sess
		data["Flashes"] = sessions.PopFlashes(c, sess)
	}
	return data
}

// redirectWithError converts a failure into a one-shot flash and sends the
// browser to a safe view. Internal detail is logged, never shown; validation,
// conflict and not-found messages are user-facing as written.
func redirectWithError(c *gin.Context, sessions *session.Manager, logger *zap.Logger, err error, location string) {
	appErr := appErrors.FromError(err)
	message := appErr.Message
	if appErr.Code == appErrors.ErrInternal.Code {
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		message = "Something went wrong. Please try again."
	}
	sessions.Flash(c, middleware.SessionFromContext(c), models.FlashError, message)
	c.Redirect(http.StatusSeeOther, location)
}

// redirectWithSuccess flashes a success notice and redirects.
func redirectWithSuccess(c *gin.Context, sessions *session.Manager, message, location string) {
	sessions.Flash(c, middleware.SessionFromContext(c), models.FlashSuccess, message)
	c.Redirect(http.StatusSeeOther, location)
}
