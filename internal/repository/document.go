package repository

import (
	"auth_backend/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const documentFileMode = 0o644

// document is the on-disk layout: two top-level arrays.
type document struct {
	Users      []models.User      `json:"users"`
	ResetCodes []models.ResetCode `json:"resetCodes"`
}

func emptyDocument() document {
	return document{
		Users:      []models.User{},
		ResetCodes: []models.ResetCode{},
	}
}

// DocumentStore keeps users and reset codes in memory and mirrors them
// to one JSON file. Every mutation rewrites the whole file.
type DocumentStore struct {
	mu   sync.RWMutex
	path string
	doc  document
}

var (
	_ Users      = (*DocumentStore)(nil)
	_ ResetCodes = (*DocumentStore)(nil)
)

// OpenDocumentStore loads the document at path and writes it back, so a
// fresh install starts with an initialized file.
func OpenDocumentStore(path string) (*DocumentStore, error) {
	s := &DocumentStore{path: path, doc: emptyDocument()}
	if err := s.Load(); err != nil {
		return nil, err
	}
	if err := s.Persist(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with the file contents. A missing file
// yields empty collections.
func (s *DocumentStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.doc = emptyDocument()
			return nil
		}
		return fmt.Errorf("read document %q: %w", s.path, err)
	}

	loaded := emptyDocument()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &loaded); err != nil {
			return fmt.Errorf("decode document %q: %w", s.path, err)
		}
	}
	if loaded.Users == nil {
		loaded.Users = []models.User{}
	}
	if loaded.ResetCodes == nil {
		loaded.ResetCodes = []models.ResetCode{}
	}
	s.doc = loaded
	return nil
}

// Persist writes the full state to disk.
func (s *DocumentStore) Persist() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistLocked()
}

// persistLocked writes to a temp file in the same directory and renames it
// over the document, so readers never see a partial write.
func (s *DocumentStore) persistLocked() error {
	b, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp document in %q: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Chmod(documentFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace document %q: %w", s.path, err)
	}
	return nil
}

// FindUserByEmail returns (nil, nil) if no user has that email.
func (s *DocumentStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.doc.Users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// AppendUser adds u and persists. The email check runs under the write lock,
// so two concurrent registrations for one email cannot both succeed.
func (s *DocumentStore) AppendUser(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.doc.Users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	s.doc.Users = append(s.doc.Users, u)
	if err := s.persistLocked(); err != nil {
		s.doc.Users = s.doc.Users[:len(s.doc.Users)-1]
		return err
	}
	return nil
}

// FindResetCode matches email and code by exact string equality.
func (s *DocumentStore) FindResetCode(_ context.Context, email, code string) (*models.ResetCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rc := range s.doc.ResetCodes {
		if rc.Email == email && rc.Code == code {
			found := rc
			return &found, nil
		}
	}
	return nil, nil
}

// ReplaceResetCode drops every code for rc.Email, appends rc and persists.
func (s *DocumentStore) ReplaceResetCode(_ context.Context, rc models.ResetCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.doc.ResetCodes
	kept := make([]models.ResetCode, 0, len(prev)+1)
	for _, c := range prev {
		if c.Email != rc.Email {
			kept = append(kept, c)
		}
	}
	s.doc.ResetCodes = append(kept, rc)
	if err := s.persistLocked(); err != nil {
		s.doc.ResetCodes = prev
		return err
	}
	return nil
}
