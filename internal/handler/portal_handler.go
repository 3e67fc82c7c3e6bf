package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/middleware"
	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/session"
)

type portalService interface {
	Enrollments(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error)
	Results(ctx context.Context, studentID int64) ([]models.ExamResult, error)
}

// PortalHandler serves the student's read-only views of their own records.
type PortalHandler struct {
	portal   portalService
	sessions *session.Manager
	logger   *zap.Logger
}

// NewPortalHandler constructs PortalHandler.
func NewPortalHandler(portal portalService, sessions *session.Manager, logger *zap.Logger) *PortalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalHandler{portal: portal, sessions: sessions, logger: logger}
}

func (h *PortalHandler) studentID(c *gin.Context) (int64, bool) {
	sess := middleware.SessionFromContext(c)
	if sess == nil || sess.StudentID == nil {
		h.sessions.Flash(c, sess, models.FlashError, "Your student account is not linked to a student record.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return 0, false
	}
	return *sess.StudentID, true
}

// MyEnrollments lists the signed-in student's course enrollments.
func (h *PortalHandler) MyEnrollments(c *gin.Context) {
	studentID, ok := h.studentID(c)
	if !ok {
		return
	}
	enrollments, err := h.portal.Enrollments(c.Request.Context(), studentID)
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "my_enrollments.tmpl", viewData(c, h.sessions, gin.H{"Enrollments": enrollments}))
}

// MyResults lists the signed-in student's exam results.
func (h *PortalHandler) MyResults(c *gin.Context) {
	studentID, ok := h.studentID(c)
	if !ok {
		return
	}
	results, err := h.portal.Results(c.Request.Context(), studentID)
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "my_results.tmpl", viewData(c, h.sessions, gin.H{"Results": results}))
}
