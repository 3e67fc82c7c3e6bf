package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type lecturerCourseRepository interface {
	ListByLecturer(ctx context.Context, lecturerID int64) ([]models.Course, error)
}

type rosterRepository interface {
	RosterByCourse(ctx context.Context, courseID int64) ([]models.RosterEntry, error)
}

// LecturerPage is the read model for the lecturer dashboard.
type LecturerPage struct {
	Courses        []models.Course
	Roster         []models.RosterEntry
	SelectedCourse int64
}

// LecturerService serves the lecturer's own courses and rosters.
type LecturerService struct {
	courses lecturerCourseRepository
	roster  rosterRepository
	logger  *zap.Logger
}

// NewLecturerService constructs the lecturer service.
func NewLecturerService(courses lecturerCourseRepository, roster rosterRepository, logger *zap.Logger) *LecturerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LecturerService{courses: courses, roster: roster, logger: logger}
}

// Page loads the lecturer's courses and, when a course is selected, the
// enrolled students for it.
func (s *LecturerService) Page(ctx context.Context, lecturerID int64, selectedCourse int64) (*LecturerPage, error) {
	courses, err := s.courses.ListByLecturer(ctx, lecturerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	page := &LecturerPage{Courses: courses, SelectedCourse: selectedCourse}
	if selectedCourse > 0 {
		roster, err := s.roster.RosterByCourse(ctx, selectedCourse)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
		}
		page.Roster = roster
	}
	return page, nil
}

// Roster returns the enrolled students of one course.
func (s *LecturerService) Roster(ctx context.Context, courseID int64) ([]models.RosterEntry, error) {
	roster, err := s.roster.RosterByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}
	return roster, nil
}
