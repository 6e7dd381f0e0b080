package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"auth_backend/internal/mailer"
	"auth_backend/internal/metrics"
	"auth_backend/internal/models"
	"auth_backend/internal/repository"
)

const (
	codeMin = 100000
	codeMax = 999999

	resetMailSubject = "Código de verificação"
)

// ResetOptions tunes the reset-code flow.
type ResetOptions struct {
	From string
	// CodeTTL bounds how long a code verifies. Zero keeps codes valid until superseded.
	CodeTTL time.Duration
}

// ResetCodeService issues and checks password-reset codes.
type ResetCodeService struct {
	users  repository.Users
	codes  repository.ResetCodes
	sender mailer.Sender
	opts   ResetOptions

	newCode func() string
	now     func() time.Time
}

func NewResetCodeService(users repository.Users, codes repository.ResetCodes, sender mailer.Sender, opts ResetOptions) *ResetCodeService {
	return &ResetCodeService{
		users:   users,
		codes:   codes,
		sender:  sender,
		opts:    opts,
		newCode: randomCode,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// randomCode returns a decimal string in [100000, 999999]. Not cryptographically strong.
func randomCode() string {
	return strconv.Itoa(codeMin + rand.Intn(codeMax-codeMin+1))
}

func resetMailHTML(code string) string {
	return "<h2>Seu código:</h2><h1>" + code + "</h1>"
}

// Issue replaces any code for email with a fresh one, persists it and mails it.
// A delivery failure leaves the new code stored.
func (s *ResetCodeService) Issue(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}

	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrEmailNotFound
	}

	code := s.newCode()
	if err := s.codes.ReplaceResetCode(ctx, models.ResetCode{
		Email:     email,
		Code:      code,
		CreatedAt: s.now(),
	}); err != nil {
		return "", fmt.Errorf("store reset code: %w", err)
	}
	metrics.ResetCodesIssued.Inc()

	err = s.sender.Send(ctx, mailer.Message{
		From:    s.opts.From,
		To:      email,
		Subject: resetMailSubject,
		HTML:    resetMailHTML(code),
	})
	if err != nil {
		metrics.ResetCodeDeliveries.WithLabelValues("failed").Inc()
		return "", deliveryFailed(err)
	}
	metrics.ResetCodeDeliveries.WithLabelValues("sent").Inc()
	return code, nil
}

// Verify reports whether code is the current code for email. It does not
// consume the code.
func (s *ResetCodeService) Verify(ctx context.Context, email, code string) (bool, error) {
	if email == "" || code == "" {
		metrics.ResetCodeChecks.WithLabelValues("invalid").Inc()
		return false, nil
	}

	rc, err := s.codes.FindResetCode(ctx, email, code)
	if err != nil {
		return false, err
	}
	if rc == nil {
		metrics.ResetCodeChecks.WithLabelValues("invalid").Inc()
		return false, nil
	}
	if s.expired(*rc) {
		metrics.ResetCodeChecks.WithLabelValues("expired").Inc()
		return false, nil
	}

	metrics.ResetCodeChecks.WithLabelValues("valid").Inc()
	return true, nil
}

// expired is always false without a TTL. With one, a code lacking a
// timestamp counts as expired.
func (s *ResetCodeService) expired(rc models.ResetCode) bool {
	if s.opts.CodeTTL <= 0 {
		return false
	}
	if rc.CreatedAt.IsZero() {
		return true
	}
	return s.now().Sub(rc.CreatedAt) > s.opts.CodeTTL
}
