package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// ExamResultRepository reads exam results joined with their exam and course.
type ExamResultRepository struct {
	db *sqlx.DB
}

// NewExamResultRepository constructs an ExamResultRepository.
func NewExamResultRepository(db *sqlx.DB) *ExamResultRepository {
	return &ExamResultRepository{db: db}
}

// ListByStudent returns one student's exam results, most recent exam first.
func (r *ExamResultRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.ExamResult, error) {
	const query = `SELECT er.result_id, c.course_code, c.course_name, ex.exam_type, ex.exam_date, er.marks, er.grade
        FROM examresults er
        JOIN exams ex ON er.exam_id = ex.exam_id
        JOIN courses c ON ex.course_id = c.course_id
        WHERE er.student_id = $1
        ORDER BY ex.exam_date DESC`
	var results []models.ExamResult
	if err := r.db.SelectContext(ctx, &results, query, studentID); err != nil {
		return nil, fmt.Errorf("list exam results: %w", err)
	}
	return results, nil
}
