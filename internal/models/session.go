package models

import "time"

// Session is the authenticated context built once at login and attached to
// every request by the session middleware. It replaces the ambient
// session-as-dictionary state with an explicit, typed carrier.
type Session struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	StudentID  *int64    `json:"student_id,omitempty"`
	LecturerID *int64    `json:"lecturer_id,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}

// Flash levels shown by the views.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot, session-scoped notice cleared after being displayed.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
