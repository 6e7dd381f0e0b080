package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"auth_backend/internal/repository"
)

func validRegistration() RegisterParams {
	return RegisterParams{
		Username:        "ana",
		Email:           "ana@x.com",
		Phone:           "123",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

// --- Register tests ---

func TestAuthService_Register_SuccessStoresDigest(t *testing.T) {
	users := &memUsers{}
	svc := NewAuthService(users, newTestCredentials())

	if err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if len(users.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users.users))
	}
	u := users.users[0]
	if u.ID == "" {
		t.Errorf("expected generated id")
	}
	if u.Username != "ana" || u.Email != "ana@x.com" || u.Phone != "123" {
		t.Errorf("unexpected stored user: %+v", u)
	}
	if u.Password == "secret1" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if !newTestCredentials().Verify("secret1", u.Password) {
		t.Errorf("stored digest does not verify with original password")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	blank := []func(*RegisterParams){
		func(p *RegisterParams) { p.Username = "" },
		func(p *RegisterParams) { p.Email = "" },
		func(p *RegisterParams) { p.Phone = "" },
		func(p *RegisterParams) { p.Password = "" },
		func(p *RegisterParams) { p.ConfirmPassword = "" },
	}
	for i, clear := range blank {
		users := &memUsers{}
		svc := NewAuthService(users, newTestCredentials())
		p := validRegistration()
		clear(&p)

		err := svc.Register(context.Background(), p)
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("case %d: expected ErrMissingFields, got %v", i, err)
		}
		if users.appendCalls != 0 {
			t.Fatalf("case %d: expected no AppendUser calls", i)
		}
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	svc := NewAuthService(&memUsers{}, newTestCredentials())
	p := validRegistration()
	p.ConfirmPassword = "secret2"

	if err := svc.Register(context.Background(), p); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(&memUsers{}, newTestCredentials())
	ctx := context.Background()

	if err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	second := validRegistration()
	second.Username = "other"
	if err := svc.Register(ctx, second); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	users := &memUsers{}
	svc := NewAuthService(users, newTestCredentials())

	const workers = 6
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Register(context.Background(), validRegistration())
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case !errors.Is(err, ErrEmailTaken):
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || len(users.users) != 1 {
		t.Fatalf("expected exactly one registration, got ok=%d stored=%d", ok, len(users.users))
	}
}

func TestAuthService_Register_RepoError(t *testing.T) {
	svc := NewAuthService(&memUsers{appendErr: errors.New("disk full")}, newTestCredentials())

	err := svc.Register(context.Background(), validRegistration())
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	var se *Error
	if errors.As(err, &se) {
		t.Fatalf("repo failure must not look like a client error: %v", err)
	}
}

func TestAuthService_Register_DuplicateFromRepo(t *testing.T) {
	svc := NewAuthService(&memUsers{appendErr: repository.ErrDuplicateEmail}, newTestCredentials())

	if err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// --- Login tests ---

func TestAuthService_Login(t *testing.T) {
	users := &memUsers{}
	svc := NewAuthService(users, newTestCredentials())
	if err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantUser string
		wantErr  error
	}{
		{"correct credentials", "ana@x.com", "secret1", "ana", nil},
		{"wrong password", "ana@x.com", "secret2", "", ErrWrongPassword},
		{"unknown email", "bob@x.com", "secret1", "", ErrUserNotFound},
		{"missing email", "", "secret1", "", ErrMissingFields},
		{"missing password", "ana@x.com", "", "", ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if username != tt.wantUser {
				t.Fatalf("expected username %q, got %q", tt.wantUser, username)
			}
		})
	}
}

func TestAuthService_Login_CorruptedDigest(t *testing.T) {
	users := &memUsers{}
	users.users = append(users.users, validUserWithDigest("garbage"))
	svc := NewAuthService(users, newTestCredentials())

	if _, err := svc.Login(context.Background(), "ana@x.com", "secret1"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword for corrupted digest, got %v", err)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc := NewAuthService(&memUsers{findErr: errors.New("io")}, newTestCredentials())

	if _, err := svc.Login(context.Background(), "ana@x.com", "secret1"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}
