package mail

import (
	"context"
	"fmt"
	"strings"

	"ClinicBook/config"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

type ErrSend struct {
	Provider string
	Err      error
}

func (e ErrSend) Error() string { return fmt.Sprintf("email send failed (%s): %v", e.Provider, e.Err) }
func (e ErrSend) Unwrap() error { return e.Err }

// New picks the provider named by MAIL_PROVIDER.
func New(cfg *config.Config) (Mailer, error) {
	switch cfg.MailProvider {
	case "smtp":
		return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom), nil
	case "sendgrid":
		return NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom), nil
	case "log", "":
		return NewLog(), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

func validate(to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrInvalidMessage{Reason: "recipient is required"}
	}
	if strings.TrimSpace(subject) == "" {
		return ErrInvalidMessage{Reason: "subject is required"}
	}
	if strings.TrimSpace(body) == "" {
		return ErrInvalidMessage{Reason: "body is required"}
	}
	return nil
}
