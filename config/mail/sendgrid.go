package mail

import (
	"context"
	"fmt"

	"ClinicBook/config/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGrid struct {
	client *sendgrid.Client
	from   string
}

func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{client: sendgrid.NewSendClient(apiKey), from: from}
}

func (s *SendGrid) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := validate(to, subject, htmlBody); err != nil {
		return err
	}
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("ClinicBook", s.from),
		subject,
		sgmail.NewEmail("", to),
		"",
		htmlBody,
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return ErrSend{Provider: "sendgrid", Err: err}
	}
	if response.StatusCode >= 400 {
		logger.Log.Warn("sendgrid rejected message",
			zap.Int("status", response.StatusCode),
			zap.String("body", response.Body))
		return ErrSend{Provider: "sendgrid", Err: fmt.Errorf("status code %d", response.StatusCode)}
	}
	return nil
}
