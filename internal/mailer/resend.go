package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// emailsAPI is the part of the Resend client used here.
type emailsAPI interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	emails emailsAPI
}

func NewResendSender(apiKey string) *ResendSender {
	client := resend.NewClient(apiKey)
	return &ResendSender{emails: client.Emails}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := s.emails.Send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend send to %q: %w", msg.To, err)
	}
	if resp == nil || resp.Id == "" {
		return errors.New("resend returned no message id")
	}
	return nil
}

var _ Sender = (*ResendSender)(nil)
