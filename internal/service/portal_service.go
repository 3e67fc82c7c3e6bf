package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type studentEnrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error)
}

type examResultRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.ExamResult, error)
}

// PortalService serves the student's own read-only views.
type PortalService struct {
	enrollments studentEnrollmentRepository
	results     examResultRepository
	logger      *zap.Logger
}

// NewPortalService constructs the portal service.
func NewPortalService(enrollments studentEnrollmentRepository, results examResultRepository, logger *zap.Logger) *PortalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalService{enrollments: enrollments, results: results, logger: logger}
}

// Enrollments returns one student's enrollments.
func (s *PortalService) Enrollments(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error) {
	rows, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	return rows, nil
}

// Results returns one student's exam results.
func (s *PortalService) Results(ctx context.Context, studentID int64) ([]models.ExamResult, error) {
	rows, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exam results")
	}
	return rows, nil
}
