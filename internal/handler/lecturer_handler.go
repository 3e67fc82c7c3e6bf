package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/middleware"
	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type lecturerPageService interface {
	Page(ctx context.Context, lecturerID, selectedCourse int64) (*service.LecturerPage, error)
}

type rosterExportService interface {
	CourseRoster(ctx context.Context, courseID int64, format string) (*service.Document, error)
}

// LecturerHandler serves the lecturer's own courses and rosters.
type LecturerHandler struct {
	lecturers lecturerPageService
	exports   rosterExportService
	sessions  *session.Manager
	logger    *zap.Logger
}

// NewLecturerHandler constructs LecturerHandler.
func NewLecturerHandler(lecturers lecturerPageService, exports rosterExportService, sessions *session.Manager, logger *zap.Logger) *LecturerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LecturerHandler{lecturers: lecturers, exports: exports, sessions: sessions, logger: logger}
}

// Dashboard renders the lecturer's courses plus the roster of an optionally
// selected course. A session without a lecturer link is a configuration
// problem, not a crash: it flashes and lands on the dashboard without
// touching the database.
func (h *LecturerHandler) Dashboard(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil || sess.LecturerID == nil {
		h.sessions.Flash(c, sess, models.FlashError, "Your lecturer account is not linked to a lecturer record.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var selectedCourse int64
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			redirectWithError(c, h.sessions, h.logger,
				appErrors.Clone(appErrors.ErrValidation, "Invalid course ID."), "/lecturer")
			return
		}
		selectedCourse = id
	}

	page, err := h.lecturers.Page(c.Request.Context(), *sess.LecturerID, selectedCourse)
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "lecturer.tmpl", viewData(c, h.sessions, gin.H{"Page": page}))
}

// ExportRoster streams the selected course roster as a CSV or PDF download.
func (h *LecturerHandler) ExportRoster(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil || sess.LecturerID == nil {
		h.sessions.Flash(c, sess, models.FlashError, "Your lecturer account is not linked to a lecturer record.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	courseID, err := strconv.ParseInt(strings.TrimSpace(c.Query("course_id")), 10, 64)
	if err != nil || courseID <= 0 {
		redirectWithError(c, h.sessions, h.logger,
			appErrors.Clone(appErrors.ErrValidation, "Invalid course ID."), "/lecturer")
		return
	}

	doc, err := h.exports.CourseRoster(c.Request.Context(), courseID, c.Query("format"))
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/lecturer")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
