package mail

import (
	"context"
	"errors"
	"testing"

	"ClinicBook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPicksProvider(t *testing.T) {
	m, err := New(&config.Config{MailProvider: "smtp", SMTPHost: "localhost", SMTPPort: 25, MailFrom: "a@b.c"})
	require.NoError(t, err)
	assert.IsType(t, &SMTP{}, m)

	m, err = New(&config.Config{MailProvider: "sendgrid", SendGridAPIKey: "SG.x", MailFrom: "a@b.c"})
	require.NoError(t, err)
	assert.IsType(t, &SendGrid{}, m)

	m, err = New(&config.Config{MailProvider: "log"})
	require.NoError(t, err)
	assert.IsType(t, &Log{}, m)

	_, err = New(&config.Config{MailProvider: "fax"})
	assert.Error(t, err)
}

func TestBuildMessageValidates(t *testing.T) {
	_, err := buildMessage("", "to@x.io", "s", "b")
	assert.Equal(t, ErrInvalidMessage{Reason: "from is required"}, err)

	_, err = buildMessage("from@x.io", " ", "s", "b")
	assert.Equal(t, ErrInvalidMessage{Reason: "recipient is required"}, err)

	_, err = buildMessage("from@x.io", "to@x.io", "", "b")
	assert.Equal(t, ErrInvalidMessage{Reason: "subject is required"}, err)

	msg, err := buildMessage("from@x.io", "to@x.io", "Your MFA Code", "<p>123456</p>")
	require.NoError(t, err)
	assert.Equal(t, []string{"to@x.io"}, msg.GetHeader("To"))
}

func TestLogProvider(t *testing.T) {
	assert.NoError(t, NewLog().Send(context.Background(), "to@x.io", "subject", "body"))
	assert.Error(t, NewLog().Send(context.Background(), "to@x.io", "subject", ""))
}

func TestSMTPHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// port 1 on localhost refuses or hangs; either way the result is an error
	err := NewSMTP("127.0.0.1", 1, "", "", "from@x.io").Send(ctx, "to@x.io", "s", "b")
	assert.Error(t, err)
}

func TestErrSendUnwraps(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := ErrSend{Provider: "gomail/smtp", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "gomail/smtp")
}
