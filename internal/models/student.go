package models

import "time"

// Student represents a row of the students table.
type Student struct {
	StudentID       int64     `db:"student_id" json:"student_id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Email           string    `db:"email" json:"email"`
	Phone           *string   `db:"phone" json:"phone,omitempty"`
	Address         *string   `db:"address" json:"address,omitempty"`
	DateOfAdmission time.Time `db:"date_of_admission" json:"date_of_admission"`
	DepartmentID    int64     `db:"department_id" json:"department_id"`
}

// StudentName is the lookup projection used by select lists.
type StudentName struct {
	StudentID int64  `db:"student_id" json:"student_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// Department represents a row of the departments table.
type Department struct {
	DepartmentID   int64  `db:"department_id" json:"department_id"`
	DepartmentName string `db:"department_name" json:"department_name"`
}

// Lecturer is the lookup projection of the lecturers table.
type Lecturer struct {
	LecturerID int64  `db:"lecturer_id" json:"lecturer_id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
}
