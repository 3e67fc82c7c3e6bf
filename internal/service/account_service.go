package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type accountRepository interface {
	List(ctx context.Context) ([]models.UserAccount, error)
	Create(ctx context.Context, account *models.UserAccount) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) (int64, error)
	Delete(ctx context.Context, userID int64) (int64, error)
}

type lecturerLookupRepository interface {
	ListNames(ctx context.Context) ([]models.Lecturer, error)
}

// AccountPage is the read model for the user accounts screen.
type AccountPage struct {
	Accounts  []models.UserAccount
	Students  []models.StudentName
	Lecturers []models.Lecturer
}

// CreateAccountRequest carries the form fields for creating an account.
type CreateAccountRequest struct {
	Username   string `form:"username" validate:"required"`
	Password   string `form:"password" validate:"required"`
	Role       string `form:"role" validate:"required"`
	StudentID  string `form:"student_id"`
	LecturerID string `form:"lecturer_id"`
}

// ResetPasswordRequest carries the form fields for a password reset.
type ResetPasswordRequest struct {
	UserID   string `form:"user_id" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AccountService handles user-account administration.
type AccountService struct {
	repo      accountRepository
	students  studentLookupRepository
	lecturers lecturerLookupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService constructs the account service.
func NewAccountService(repo accountRepository, students studentLookupRepository, lecturers lecturerLookupRepository, validate *validator.Validate, logger *zap.Logger) *AccountService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{repo: repo, students: students, lecturers: lecturers, validator: validate, logger: logger}
}

// Page loads the user accounts screen data.
func (s *AccountService) Page(ctx context.Context) (*AccountPage, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list accounts")
	}
	students, err := s.students.ListNames(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	lecturers, err := s.lecturers.ListNames(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lecturers")
	}
	return &AccountPage{Accounts: accounts, Students: students, Lecturers: lecturers}, nil
}

// Create registers a new account. The role is parsed against the closed enum;
// a student role must carry a student link and a lecturer role a lecturer
// link, while a link inconsistent with the chosen role is silently discarded.
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.Role = strings.TrimSpace(req.Role)
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.LecturerID = strings.TrimSpace(req.LecturerID)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Username, password and role are required.")
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Unknown role.")
	}

	if role == models.RoleStudent && req.StudentID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Student role requires a student link.")
	}
	if role == models.RoleLecturer && req.LecturerID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Lecturer role requires a lecturer link.")
	}
	if role != models.RoleStudent {
		req.StudentID = ""
	}
	if role != models.RoleLecturer {
		req.LecturerID = ""
	}

	account := &models.UserAccount{Username: req.Username, Role: role}
	if req.StudentID != "" {
		id, err := parseID(req.StudentID, "student")
		if err != nil {
			return err
		}
		account.StudentID = &id
	}
	if req.LecturerID != "" {
		id, err := parseID(req.LecturerID, "lecturer")
		if err != nil {
			return err
		}
		account.LecturerID = &id
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	account.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, account); err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrConflict.Code {
			return err
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}
	return nil
}

// ResetPassword stores a new hash for an existing account.
func (s *AccountService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Password = strings.TrimSpace(req.Password)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Select a user and enter a new password.")
	}
	userID, err := parseID(req.UserID, "user")
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	affected, err := s.repo.UpdatePassword(ctx, userID, string(hash))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Account not found.")
	}
	return nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, rawID string) error {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Select a user to delete.")
	}
	userID, err := parseID(rawID, "user")
	if err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, userID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete account")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Account not found.")
	}
	return nil
}
