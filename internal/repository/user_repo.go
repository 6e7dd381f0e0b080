package repository

import (
	"auth_backend/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL        = `INSERT INTO users (id, username, email, phone, password) VALUES (?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, username, email, phone, password FROM users WHERE email = ?`
)

// AppendUser inserts a new user. The UNIQUE index on email turns a racing
// duplicate into ErrDuplicateEmail.
func (r *UserSQLite) AppendUser(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.Email, u.Phone, u.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// FindUserByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	// extended codes carry the primary code in the low byte
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
