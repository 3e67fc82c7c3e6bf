package models

import "time"

// EnrollmentDetail is an enrollment joined with student, course and semester
// names as presented on the enrollment screen.
type EnrollmentDetail struct {
	EnrollmentID   int64     `db:"enrollment_id" json:"enrollment_id"`
	StudentID      int64     `db:"student_id" json:"student_id"`
	StudentName    string    `db:"student_name" json:"student_name"`
	CourseID       int64     `db:"course_id" json:"course_id"`
	CourseCode     string    `db:"course_code" json:"course_code"`
	CourseName     string    `db:"course_name" json:"course_name"`
	SemesterID     int64     `db:"semester_id" json:"semester_id"`
	SemesterName   string    `db:"semester_name" json:"semester_name"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollment_date"`
	Grade          *string   `db:"grade" json:"grade,omitempty"`
}

// StudentEnrollment is the student's own view of one enrollment.
type StudentEnrollment struct {
	EnrollmentID   int64     `db:"enrollment_id" json:"enrollment_id"`
	CourseCode     string    `db:"course_code" json:"course_code"`
	CourseName     string    `db:"course_name" json:"course_name"`
	SemesterName   string    `db:"semester_name" json:"semester_name"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollment_date"`
	Grade          *string   `db:"grade" json:"grade,omitempty"`
}

// RosterEntry is one enrolled student of a course as shown to its lecturer.
type RosterEntry struct {
	StudentID      int64     `db:"student_id" json:"student_id"`
	StudentName    string    `db:"student_name" json:"student_name"`
	SemesterName   string    `db:"semester_name" json:"semester_name"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollment_date"`
	Grade          *string   `db:"grade" json:"grade,omitempty"`
}
