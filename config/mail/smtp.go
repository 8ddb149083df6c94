package mail

import (
	"context"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{dialer: gomail.NewDialer(host, port, username, password), from: from}
}

/*
* Build the message first so invalid input never dials
* Dial in a goroutine and honour the request context
 */
func (s *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg, err := buildMessage(s.from, to, subject, htmlBody)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to, subject, htmlBody string) (*gomail.Message, error) {
	if strings.TrimSpace(from) == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	if err := validate(to, subject, htmlBody); err != nil {
		return nil, err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", strings.TrimSpace(from))
	msg.SetHeader("To", strings.TrimSpace(to))
	msg.SetHeader("Subject", strings.TrimSpace(subject))
	msg.SetBody("text/html", htmlBody)
	return msg, nil
}
