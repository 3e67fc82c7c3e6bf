package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

// StudentHandler serves the students administration screen.
type StudentHandler struct {
	students *service.StudentService
	exports  *service.ExportService
	sessions *session.Manager
	logger   *zap.Logger
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, exports *service.ExportService, sessions *session.Manager, logger *zap.Logger) *StudentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentHandler{students: students, exports: exports, sessions: sessions, logger: logger}
}

// Page renders the student list with the department lookup.
func (h *StudentHandler) Page(c *gin.Context) {
	page, err := h.students.Page(c.Request.Context())
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "students.tmpl", viewData(c, h.sessions, gin.H{"Page": page}))
}

// Mutate dispatches the posted action and redirects back to the list.
func (h *StudentHandler) Mutate(c *gin.Context) {
	var err error
	var success string

	switch c.PostForm("action") {
	case "create":
		var req service.CreateStudentRequest
		if bindErr := c.ShouldBind(&req); bindErr != nil {
			err = appErrors.Clone(appErrors.ErrValidation, "Missing required fields.")
			break
		}
		err = h.students.Create(c.Request.Context(), req)
		success = "Student created."
	case "update":
		var req service.UpdateStudentRequest
		if bindErr := c.ShouldBind(&req); bindErr != nil {
			err = appErrors.Clone(appErrors.ErrValidation, "Missing required fields.")
			break
		}
		err = h.students.Update(c.Request.Context(), req)
		success = "Student updated."
	case "delete":
		err = h.students.Delete(c.Request.Context(), c.PostForm("student_id"))
		success = "Student deleted."
	default:
		err = appErrors.Clone(appErrors.ErrValidation, "Unknown action.")
	}

	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/students")
		return
	}
	redirectWithSuccess(c, h.sessions, success, "/students")
}

// Export streams the student register as a CSV or PDF download.
func (h *StudentHandler) Export(c *gin.Context) {
	doc, err := h.exports.StudentRegister(c.Request.Context(), c.Query("format"))
	if err != nil {
		redirectWithError(c, h.sessions, h.logger, err, "/students")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
