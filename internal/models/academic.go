package models

import "time"

// Course represents a row of the courses table.
type Course struct {
	CourseID   int64  `db:"course_id" json:"course_id"`
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
	LecturerID *int64 `db:"lecturer_id" json:"lecturer_id,omitempty"`
}

// Semester represents a row of the semester table.
type Semester struct {
	SemesterID   int64  `db:"semester_id" json:"semester_id"`
	SemesterName string `db:"semester_name" json:"semester_name"`
}

// ExamResult is a student's result joined with its exam and course.
type ExamResult struct {
	ResultID   int64     `db:"result_id" json:"result_id"`
	CourseCode string    `db:"course_code" json:"course_code"`
	CourseName string    `db:"course_name" json:"course_name"`
	ExamType   string    `db:"exam_type" json:"exam_type"`
	ExamDate   time.Time `db:"exam_date" json:"exam_date"`
	Marks      float64   `db:"marks" json:"marks"`
	Grade      *string   `db:"grade" json:"grade,omitempty"`
}
