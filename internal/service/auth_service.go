package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type authAccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.UserAccount, error)
}

// AuthService authenticates credentials against stored accounts.
type AuthService struct {
	repo   authAccountRepository
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authAccountRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, logger: logger}
}

// Login verifies the credentials and returns the session context to attach.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid username or password.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid username or password.")
	}

	return &models.Session{
		UserID:     account.UserID,
		Username:   account.Username,
		Role:       account.Role,
		StudentID:  account.StudentID,
		LecturerID: account.LecturerID,
	}, nil
}
