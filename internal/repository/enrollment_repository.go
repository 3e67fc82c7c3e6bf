package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// EnrollmentRepository manages persistence for enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListDetailed returns all enrollments joined with student, course and
// semester names, newest first.
func (r *EnrollmentRepository) ListDetailed(ctx context.Context) ([]models.EnrollmentDetail, error) {
	const query = `SELECT e.enrollment_id, e.student_id,
            s.first_name || ' ' || s.last_name AS student_name,
            e.course_id, c.course_code, c.course_name,
            e.semester_id, sem.semester_name,
            e.enrollment_date, e.grade
        FROM enrollment e
        JOIN students s ON e.student_id = s.student_id
        JOIN courses c ON e.course_id = c.course_id
        JOIN semester sem ON e.semester_id = sem.semester_id
        ORDER BY e.enrollment_id DESC`
	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// ListByStudent returns one student's enrollments, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error) {
	const query = `SELECT e.enrollment_id, c.course_code, c.course_name, sem.semester_name, e.enrollment_date, e.grade
        FROM enrollment e
        JOIN courses c ON e.course_id = c.course_id
        JOIN semester sem ON e.semester_id = sem.semester_id
        WHERE e.student_id = $1
        ORDER BY e.enrollment_id DESC`
	var enrollments []models.StudentEnrollment
	if err := r.db.SelectContext(ctx, &enrollments, query, studentID); err != nil {
		return nil, fmt.Errorf("list student enrollments: %w", err)
	}
	return enrollments, nil
}

// RosterByCourse returns the students enrolled in a course, most recent
// semester first and students in ascending order within it.
func (r *EnrollmentRepository) RosterByCourse(ctx context.Context, courseID int64) ([]models.RosterEntry, error) {
	const query = `SELECT s.student_id,
            s.first_name || ' ' || s.last_name AS student_name,
            sem.semester_name, e.enrollment_date, e.grade
        FROM enrollment e
        JOIN students s ON e.student_id = s.student_id
        JOIN semester sem ON e.semester_id = sem.semester_id
        WHERE e.course_id = $1
        ORDER BY sem.semester_id DESC, s.student_id ASC`
	var roster []models.RosterEntry
	if err := r.db.SelectContext(ctx, &roster, query, courseID); err != nil {
		return nil, fmt.Errorf("list course roster: %w", err)
	}
	return roster, nil
}

// Create inserts an enrollment dated with the database's current date.
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, courseID, semesterID int64) error {
	const query = `INSERT INTO enrollment (student_id, course_id, semester_id, enrollment_date)
        VALUES ($1, $2, $3, CURRENT_DATE)`
	if _, err := r.db.ExecContext(ctx, query, studentID, courseID, semesterID); err != nil {
		return fmt.Errorf("create enrollment: %w", translateConstraint(err, "student is already enrolled in this course"))
	}
	return nil
}
