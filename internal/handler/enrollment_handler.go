package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

// EnrollmentHandler serves the enrollment administration screen.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
	sessions    *session.Manager
	logger      *zap.Logger
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService, sessions *session.Manager, logger *zap.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentHandler{enrollments: enrollments, sessions: sessions, logger: logger}
}

// Page renders the enrollment list and its lookup lists.
func (h *EnrollmentHandler) Page(c *gin.Context) {
	page, err := h.enrollments.Page(c.Request.Context())
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "enrollment.tmpl", viewData(c, h.sessions, gin.H{"Page": page}))
}

// Enroll inserts a new enrollment and redirects back to the list.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, h.sessions, h.logger,
			appErrors.Clone(appErrors.ErrValidation, "Student, course and semester are required."), "/enrollment")
		return
	}
	if err := h.enrollments.Enroll(c.Request.Context(), req); err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/enrollment")
		return
	}
	redirectWithSuccess(c, h.sessions, "Enrollment added.", "/enrollment")
}
