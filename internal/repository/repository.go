package repository

import (
	"auth_backend/internal/models"
	"context"
	"database/sql"
	"errors"
	"io"
)

// ErrDuplicateEmail is returned by AppendUser when the email is already registered.
var ErrDuplicateEmail = errors.New("duplicate email")

type Users interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	AppendUser(ctx context.Context, u models.User) error
}

type ResetCodes interface {
	FindResetCode(ctx context.Context, email, code string) (*models.ResetCode, error)
	ReplaceResetCode(ctx context.Context, rc models.ResetCode) error
}

type Repository struct {
	Users      Users
	ResetCodes ResetCodes

	closer io.Closer
}

// NewDocumentRepository backs both collections with a single JSON document.
func NewDocumentRepository(doc *DocumentStore) *Repository {
	return &Repository{Users: doc, ResetCodes: doc}
}

func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserSQLite(db),
		ResetCodes: NewResetCodeSQLite(db),
		closer:     db,
	}
}

// Close releases the underlying database, if any.
func (r *Repository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
