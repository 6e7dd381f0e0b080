package repository

import (
	"auth_backend/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type ResetCodeSQLite struct {
	db *sql.DB
}

func NewResetCodeSQLite(db *sql.DB) *ResetCodeSQLite {
	return &ResetCodeSQLite{db: db}
}

var _ ResetCodes = (*ResetCodeSQLite)(nil)

const (
	// email is the primary key, so an upsert keeps one code per email.
	upsertResetCodeSQL = `
		INSERT INTO reset_codes (email, code, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			code=excluded.code,
			created_at=excluded.created_at
	`

	selectResetCodeSQL = `SELECT email, code, created_at FROM reset_codes WHERE email = ? AND code = ?`
)

// ReplaceResetCode stores rc, discarding any previous code for the same email.
func (r *ResetCodeSQLite) ReplaceResetCode(ctx context.Context, rc models.ResetCode) error {
	created := rc.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	} else {
		created = created.UTC()
	}
	if _, err := r.db.ExecContext(ctx, upsertResetCodeSQL, rc.Email, rc.Code, created); err != nil {
		return fmt.Errorf("upsert reset code for %q: %w", rc.Email, err)
	}
	return nil
}

// FindResetCode returns (nil, nil) when no code matches.
func (r *ResetCodeSQLite) FindResetCode(ctx context.Context, email, code string) (*models.ResetCode, error) {
	var rc models.ResetCode
	err := r.db.QueryRowContext(ctx, selectResetCodeSQL, email, code).Scan(&rc.Email, &rc.Code, &rc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select reset code for %q: %w", email, err)
	}
	rc.CreatedAt = rc.CreatedAt.UTC()
	return &rc, nil
}
