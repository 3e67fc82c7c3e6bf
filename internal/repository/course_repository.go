package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// CourseRepository reads the courses table.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT course_id, course_code, course_name, lecturer_id FROM courses ORDER BY course_code`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListByLecturer returns the courses owned by one lecturer, ordered by code.
func (r *CourseRepository) ListByLecturer(ctx context.Context, lecturerID int64) ([]models.Course, error) {
	const query = `SELECT course_id, course_code, course_name, lecturer_id FROM courses WHERE lecturer_id = $1 ORDER BY course_code`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, lecturerID); err != nil {
		return nil, fmt.Errorf("list lecturer courses: %w", err)
	}
	return courses, nil
}
