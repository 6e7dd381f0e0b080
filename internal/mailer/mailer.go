// Package mailer delivers outbound email.
package mailer

import (
	"context"
	"errors"
	"strings"
)

// Providers accepted by New.
const (
	ProviderResend = "resend"
	ProviderLog    = "log"
)

var errMissingAPIKey = errors.New("mail api key is not configured")

// Message is the payload handed to the email provider.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender makes one delivery attempt per call.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Logger is the subset of the application logger the log sender needs.
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
}

// New builds the sender for provider.
func New(provider, apiKey string, log Logger) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderLog:
		return NewLogSender(log), nil
	case ProviderResend, "":
		if strings.TrimSpace(apiKey) == "" {
			return nil, errMissingAPIKey
		}
		return NewResendSender(apiKey), nil
	default:
		return nil, errors.New("unknown mail provider: " + provider)
	}
}
