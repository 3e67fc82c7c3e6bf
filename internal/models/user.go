package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles understood by the portal.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleLecturer Role = "lecturer"
	RoleStudent  Role = "student"
)

// ParseRole maps free-text input onto the role enum. Unknown values are
// rejected here, at account creation, instead of at every comparison site.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	case RoleLecturer:
		return RoleLecturer, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Matches reports whether the role equals raw, compared case-insensitively.
func (r Role) Matches(raw string) bool {
	return strings.EqualFold(string(r), raw)
}

// UserAccount represents a row of the useraccounts table.
type UserAccount struct {
	UserID       int64  `db:"user_id" json:"user_id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         Role   `db:"role" json:"role"`
	StudentID    *int64 `db:"student_id" json:"student_id,omitempty"`
	LecturerID   *int64 `db:"lecturer_id" json:"lecturer_id,omitempty"`
}
