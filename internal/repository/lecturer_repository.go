package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// LecturerRepository reads the lecturers lookup table.
type LecturerRepository struct {
	db *sqlx.DB
}

// NewLecturerRepository constructs a LecturerRepository.
func NewLecturerRepository(db *sqlx.DB) *LecturerRepository {
	return &LecturerRepository{db: db}
}

// ListNames returns all lecturers, newest first.
func (r *LecturerRepository) ListNames(ctx context.Context) ([]models.Lecturer, error) {
	const query = `SELECT lecturer_id, first_name, last_name FROM lecturers ORDER BY lecturer_id DESC`
	var lecturers []models.Lecturer
	if err := r.db.SelectContext(ctx, &lecturers, query); err != nil {
		return nil, fmt.Errorf("list lecturers: %w", err)
	}
	return lecturers, nil
}
