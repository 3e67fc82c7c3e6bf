package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

const admissionDateLayout = "2006-01-02"

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
}

// StudentPage is the read model for the students screen.
type StudentPage struct {
	Students    []models.Student
	Departments []models.Department
}

// CreateStudentRequest carries the trimmed form fields for creating a student.
type CreateStudentRequest struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Phone           string `form:"phone"`
	Address         string `form:"address"`
	DateOfAdmission string `form:"date_of_admission" validate:"required"`
	DepartmentID    string `form:"department_id" validate:"required"`
}

// UpdateStudentRequest additionally identifies the row to change.
type UpdateStudentRequest struct {
	StudentID string `form:"student_id" validate:"required"`
	CreateStudentRequest
}

// StudentService handles student use-cases.
type StudentService struct {
	repo        studentRepository
	departments departmentRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, departments departmentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, departments: departments, validator: validate, logger: logger}
}

// Page loads the students screen data.
func (s *StudentService) Page(ctx context.Context) (*StudentPage, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	return &StudentPage{Students: students, Departments: departments}, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) error {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Missing required fields.")
	}
	student, err := req.toStudent()
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return nil
}

// Update modifies an existing student. A missing row is a typed not-found.
func (s *StudentService) Update(ctx context.Context, req UpdateStudentRequest) error {
	req.normalize()
	req.StudentID = strings.TrimSpace(req.StudentID)
	if req.StudentID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Student ID is required for update.")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Missing required fields.")
	}
	id, err := parseID(req.StudentID, "student")
	if err != nil {
		return err
	}
	student, err := req.toStudent()
	if err != nil {
		return err
	}
	student.StudentID = id

	affected, err := s.repo.Update(ctx, student)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
	}
	return nil
}

// Delete removes a student. Zero rows affected is surfaced as not-found
// rather than silently reported as success.
func (s *StudentService) Delete(ctx context.Context, rawID string) error {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Student ID is required for delete.")
	}
	id, err := parseID(rawID, "student")
	if err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
	}
	return nil
}

func (req *CreateStudentRequest) normalize() {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.DateOfAdmission = strings.TrimSpace(req.DateOfAdmission)
	req.DepartmentID = strings.TrimSpace(req.DepartmentID)
}

func (req CreateStudentRequest) toStudent() (*models.Student, error) {
	admitted, err := time.Parse(admissionDateLayout, req.DateOfAdmission)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Date of admission must be YYYY-MM-DD.")
	}
	departmentID, err := parseID(req.DepartmentID, "department")
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		DateOfAdmission: admitted,
		DepartmentID:    departmentID,
	}
	if req.Phone != "" {
		student.Phone = &req.Phone
	}
	if req.Address != "" {
		student.Address = &req.Address
	}
	return student, nil
}

func parseID(raw, entity string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Invalid "+entity+" ID.")
	}
	return id, nil
}
