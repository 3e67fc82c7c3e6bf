package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

func TestEnrollmentRepositoryListDetailed(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{
		"enrollment_id", "student_id", "student_name",
		"course_id", "course_code", "course_name",
		"semester_id", "semester_name", "enrollment_date", "grade",
	}).
		AddRow(int64(2), int64(5), "Amina Diallo", int64(1), "CS101", "Intro to Computing", int64(1), "Fall 2026", time.Now(), nil).
		AddRow(int64(1), int64(4), "Bram Verhoeven", int64(1), "CS101", "Intro to Computing", int64(1), "Fall 2026", time.Now(), nil)
	mock.ExpectQuery(`SELECT e.enrollment_id, (.+) FROM enrollment e JOIN students s (.+) ORDER BY e.enrollment_id DESC`).
		WillReturnRows(rows)

	enrollments, err := repo.ListDetailed(context.Background())
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, int64(2), enrollments[0].EnrollmentID)
	assert.Equal(t, "Amina Diallo", enrollments[0].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollment").
		WithArgs(int64(5), int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), 5, 1, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollment").
		WithArgs(int64(5), int64(1), int64(1)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), 5, 1, 1)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryRosterByCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "student_name", "semester_name", "enrollment_date", "grade"}).
		AddRow(int64(4), "Bram Verhoeven", "Fall 2026", time.Now(), nil).
		AddRow(int64(5), "Amina Diallo", "Fall 2026", time.Now(), nil)
	mock.ExpectQuery(`SELECT s.student_id, (.+) WHERE e.course_id = \$1 ORDER BY sem.semester_id DESC, s.student_id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	roster, err := repo.RosterByCourse(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, int64(4), roster[0].StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	grade := "A"
	rows := sqlmock.NewRows([]string{"enrollment_id", "course_code", "course_name", "semester_name", "enrollment_date", "grade"}).
		AddRow(int64(9), "CS101", "Intro to Computing", "Fall 2026", time.Now(), &grade)
	mock.ExpectQuery(`SELECT e.enrollment_id, c.course_code, (.+) WHERE e.student_id = \$1 ORDER BY e.enrollment_id DESC`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	enrollments, err := repo.ListByStudent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.NotNil(t, enrollments[0].Grade)
	assert.Equal(t, "A", *enrollments[0].Grade)
	assert.NoError(t, mock.ExpectationsWereMet())
}
