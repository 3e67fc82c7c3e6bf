package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type enrollmentRepository interface {
	ListDetailed(ctx context.Context) ([]models.EnrollmentDetail, error)
	Create(ctx context.Context, studentID, courseID, semesterID int64) error
}

type studentLookupRepository interface {
	ListNames(ctx context.Context) ([]models.StudentName, error)
}

type courseLookupRepository interface {
	List(ctx context.Context) ([]models.Course, error)
}

type semesterLookupRepository interface {
	List(ctx context.Context) ([]models.Semester, error)
}

// EnrollmentPage is the read model for the enrollment screen.
type EnrollmentPage struct {
	Enrollments []models.EnrollmentDetail
	Students    []models.StudentName
	Courses     []models.Course
	Semesters   []models.Semester
}

// EnrollRequest carries the form fields for adding an enrollment.
type EnrollRequest struct {
	StudentID  string `form:"student_id" validate:"required"`
	CourseID   string `form:"course_id" validate:"required"`
	SemesterID string `form:"semester_id" validate:"required"`
}

// EnrollmentService handles enrollment use-cases.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  studentLookupRepository
	courses   courseLookupRepository
	semesters semesterLookupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, students studentLookupRepository, courses courseLookupRepository, semesters semesterLookupRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, students: students, courses: courses, semesters: semesters, validator: validate, logger: logger}
}

// Page loads the enrollment screen data.
func (s *EnrollmentService) Page(ctx context.Context) (*EnrollmentPage, error) {
	enrollments, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	students, err := s.students.ListNames(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semesters")
	}
	return &EnrollmentPage{Enrollments: enrollments, Students: students, Courses: courses, Semesters: semesters}, nil
}

// Enroll inserts one enrollment dated today. Duplicate enrollments surface
// the data layer's typed conflict untouched.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) error {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.CourseID = strings.TrimSpace(req.CourseID)
	req.SemesterID = strings.TrimSpace(req.SemesterID)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Student, course and semester are required.")
	}

	studentID, err := parseID(req.StudentID, "student")
	if err != nil {
		return err
	}
	courseID, err := parseID(req.CourseID, "course")
	if err != nil {
		return err
	}
	semesterID, err := parseID(req.SemesterID, "semester")
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, studentID, courseID, semesterID); err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrConflict.Code {
			return err
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}
	return nil
}
