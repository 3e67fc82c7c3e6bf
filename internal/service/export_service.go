package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
	"github.com/noah-isme/srs-portal/pkg/export"
)

// Document is a rendered download.
type Document struct {
	Content     []byte
	ContentType string
	Filename    string
}

type exportStudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
}

// ExportService renders the student register and course rosters as CSV or PDF
// downloads.
type ExportService struct {
	students exportStudentRepository
	roster   rosterRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students exportStudentRepository, roster rosterRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		roster:   roster,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// StudentRegister renders the full student list.
func (s *ExportService) StudentRegister(ctx context.Context, format string) (*Document, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	table := export.Table{
		Headers: []string{"Student ID", "First Name", "Last Name", "Email", "Phone", "Address", "Date of Admission", "Department ID"},
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(st.StudentID, 10),
			st.FirstName,
			st.LastName,
			st.Email,
			stringOrEmpty(st.Phone),
			stringOrEmpty(st.Address),
			st.DateOfAdmission.Format(admissionDateLayout),
			strconv.FormatInt(st.DepartmentID, 10),
		})
	}
	return s.render(table, "Student Register", "students", format)
}

// CourseRoster renders the enrolled students of one course.
func (s *ExportService) CourseRoster(ctx context.Context, courseID int64, format string) (*Document, error) {
	roster, err := s.roster.RosterByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}

	table := export.Table{
		Headers: []string{"Student ID", "Student", "Semester", "Enrollment Date", "Grade"},
	}
	for _, entry := range roster {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(entry.StudentID, 10),
			entry.StudentName,
			entry.SemesterName,
			entry.EnrollmentDate.Format(admissionDateLayout),
			stringOrEmpty(entry.Grade),
		})
	}
	name := fmt.Sprintf("roster-%d", courseID)
	return s.render(table, "Course Roster", name, format)
}

func (s *ExportService) render(table export.Table, title, name, format string) (*Document, error) {
	switch format {
	case "", "csv":
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &Document{Content: content, ContentType: "text/csv", Filename: name + ".csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(table, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &Document{Content: content, ContentType: "application/pdf", Filename: name + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "Unknown export format.")
	}
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
