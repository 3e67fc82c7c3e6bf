package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/srs-portal/internal/models"
	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

type mockAccountRepo struct {
	created      *models.UserAccount
	createErr    error
	updatedRows  int64
	updateErr    error
	deletedRows  int64
	deleteErr    error
	accounts     []models.UserAccount
	listErr      error
	lastPassword string
}

func (m *mockAccountRepo) List(_ context.Context) ([]models.UserAccount, error) {
	return m.accounts, m.listErr
}

func (m *mockAccountRepo) Create(_ context.Context, account *models.UserAccount) error {
	m.created = account
	return m.createErr
}

func (m *mockAccountRepo) UpdatePassword(_ context.Context, _ int64, passwordHash string) (int64, error) {
	m.lastPassword = passwordHash
	return m.updatedRows, m.updateErr
}

func (m *mockAccountRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return m.deletedRows, m.deleteErr
}

type mockStudentLookup struct {
	names []models.StudentName
	err   error
}

func (m *mockStudentLookup) ListNames(_ context.Context) ([]models.StudentName, error) {
	return m.names, m.err
}

type mockLecturerLookup struct {
	names []models.Lecturer
	err   error
}

func (m *mockLecturerLookup) ListNames(_ context.Context) ([]models.Lecturer, error) {
	return m.names, m.err
}

func newAccountService(repo *mockAccountRepo) *AccountService {
	return NewAccountService(repo, &mockStudentLookup{}, &mockLecturerLookup{}, nil, nil)
}

func TestAccountServiceCreateHashesPassword(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "registrar",
		Password: "s3cret",
		Role:     "staff",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, models.RoleStaff, repo.created.Role)
	assert.NotEqual(t, "s3cret", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("s3cret")))
}

func TestAccountServiceCreateUnknownRole(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "registrar",
		Password: "s3cret",
		Role:     "principal",
	})
	require.Error(t, err)
	assert.Equal(t, "Unknown role.", appErrors.FromError(err).Message)
	assert.Nil(t, repo.created)
}

func TestAccountServiceCreateStudentRequiresLink(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "amina",
		Password: "s3cret",
		Role:     "student",
	})
	require.Error(t, err)
	assert.Equal(t, "Student role requires a student link.", appErrors.FromError(err).Message)
	assert.Nil(t, repo.created)
}

func TestAccountServiceCreateLecturerRequiresLink(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "kowalski",
		Password: "s3cret",
		Role:     "lecturer",
	})
	require.Error(t, err)
	assert.Equal(t, "Lecturer role requires a lecturer link.", appErrors.FromError(err).Message)
}

func TestAccountServiceCreateDiscardsMismatchedLinks(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username:   "registrar",
		Password:   "s3cret",
		Role:       "staff",
		StudentID:  "5",
		LecturerID: "7",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.StudentID)
	assert.Nil(t, repo.created.LecturerID)
}

func TestAccountServiceCreateKeepsMatchingLink(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username:  "amina",
		Password:  "s3cret",
		Role:      "student",
		StudentID: "5",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.StudentID)
	assert.Equal(t, int64(5), *repo.created.StudentID)
	assert.Nil(t, repo.created.LecturerID)
}

func TestAccountServiceCreatePassesThroughConflict(t *testing.T) {
	repo := &mockAccountRepo{createErr: appErrors.Clone(appErrors.ErrConflict, "Username already exists.")}
	svc := newAccountService(repo)

	err := svc.Create(context.Background(), CreateAccountRequest{
		Username: "admin",
		Password: "s3cret",
		Role:     "admin",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "Username already exists.", appErr.Message)
}

func TestAccountServiceCreateMissingFields(t *testing.T) {
	svc := newAccountService(&mockAccountRepo{})

	err := svc.Create(context.Background(), CreateAccountRequest{Username: "admin"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAccountServiceResetPasswordNotFound(t *testing.T) {
	repo := &mockAccountRepo{updatedRows: 0}
	svc := newAccountService(repo)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{UserID: "42", Password: "n3w"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Account not found.", appErr.Message)
}

func TestAccountServiceResetPasswordHashes(t *testing.T) {
	repo := &mockAccountRepo{updatedRows: 1}
	svc := newAccountService(repo)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{UserID: "42", Password: "n3w"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastPassword), []byte("n3w")))
}

func TestAccountServiceDeleteNotFound(t *testing.T) {
	repo := &mockAccountRepo{deletedRows: 0}
	svc := newAccountService(repo)

	err := svc.Delete(context.Background(), "42")
	require.Error(t, err)
	assert.Equal(t, "Account not found.", appErrors.FromError(err).Message)
}

func TestAccountServiceDeleteInvalidID(t *testing.T) {
	svc := newAccountService(&mockAccountRepo{})

	err := svc.Delete(context.Background(), "abc")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
