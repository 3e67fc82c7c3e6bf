package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/srs-portal/internal/models"
)

// AccountRepository manages persistence for user accounts.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository constructs an AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByUsername returns the account matching a username.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	const query = `SELECT user_id, username, password_hash, role, student_id, lecturer_id
        FROM useraccounts WHERE username = $1 LIMIT 1`
	var account models.UserAccount
	if err := r.db.GetContext(ctx, &account, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find account by username: %w", err)
	}
	return &account, nil
}

// List returns all accounts, newest first. Password hashes are not selected.
func (r *AccountRepository) List(ctx context.Context) ([]models.UserAccount, error) {
	const query = `SELECT user_id, username, role, student_id, lecturer_id FROM useraccounts ORDER BY user_id DESC`
	var accounts []models.UserAccount
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Create inserts a new account. A username collision surfaces as a typed
// conflict decided here, not by matching error text upstream.
func (r *AccountRepository) Create(ctx context.Context, account *models.UserAccount) error {
	const query = `INSERT INTO useraccounts (username, password_hash, role, student_id, lecturer_id)
        VALUES (:username, :password_hash, :role, :student_id, :lecturer_id)`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		return translateConstraint(err, "Username already exists.")
	}
	return nil
}

// UpdatePassword replaces the stored password hash and reports rows touched.
func (r *AccountRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) (int64, error) {
	const query = `UPDATE useraccounts SET password_hash = $2 WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("update account password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update account password rows: %w", err)
	}
	return affected, nil
}

// Delete removes an account and reports rows touched.
func (r *AccountRepository) Delete(ctx context.Context, userID int64) (int64, error) {
	const query = `DELETE FROM useraccounts WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("delete account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete account rows: %w", err)
	}
	return affected, nil
}
