package mailer

import "context"

// LogSender writes messages to the log instead of sending them. Development only:
// the body, and so the reset code, ends up in the log.
type LogSender struct {
	log Logger
}

func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if s.log != nil {
		s.log.Infow("mail_logged", "from", msg.From, "to", msg.To, "subject", msg.Subject, "html", msg.HTML)
	}
	return nil
}

var _ Sender = (*LogSender)(nil)
