package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns all students, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT student_id, first_name, last_name, email, phone, address, date_of_admission, department_id
        FROM students
        ORDER BY student_id DESC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ListNames returns the lookup projection used by select lists, newest first.
func (r *StudentRepository) ListNames(ctx context.Context) ([]models.StudentName, error) {
	const query = `SELECT student_id, first_name, last_name FROM students ORDER BY student_id DESC`
	var names []models.StudentName
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list student names: %w", err)
	}
	return names, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (first_name, last_name, email, phone, address, date_of_admission, department_id)
        VALUES (:first_name, :last_name, :email, :phone, :address, :date_of_admission, :department_id)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", translateConstraint(err, "student already exists"))
	}
	return nil
}

// Update modifies an existing student and reports the number of rows touched.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (int64, error) {
	const query = `UPDATE students
        SET first_name = :first_name, last_name = :last_name, email = :email, phone = :phone,
            address = :address, date_of_admission = :date_of_admission, department_id = :department_id
        WHERE student_id = :student_id`
	result, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return 0, fmt.Errorf("update student: %w", translateConstraint(err, "student already exists"))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update student rows: %w", err)
	}
	return affected, nil
}

// Delete removes a student and reports the number of rows touched.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM students WHERE student_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete student rows: %w", err)
	}
	return affected, nil
}
