package server

import (
	"context"
	"testing"
	"time"

	"ClinicBook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:           "development",
		LogLevel:      "error",
		Store:         "memory",
		JWTSecret:     "secret",
		JWTExpiresIn:  time.Hour,
		EncryptionKey: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		MFAIssuer:     "ClinicBook",
		MailProvider:  "log",
		SlotDayStart:  "09:00",
		SlotDayEnd:    "17:00",
		SlotMinutes:   60,
	}
}

func TestStartWiresJobsWithoutServer(t *testing.T) {
	var got *App
	stopped := false

	err := Start(Options{
		Config:      testConfig(),
		JobsEnabled: true,
		JobsHandler: func(app *App) func() {
			got = app
			return func() { stopped = true }
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, stopped)
	assert.NotNil(t, got.UserAuth)
	assert.NotNil(t, got.DoctorAuth)
	assert.NoError(t, got.Ping(context.Background()))
}

func TestNewAppRejectsBadTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.SlotDayStart = "18:00"
	_, err := NewApp(cfg, Stores{}, nil, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.EncryptionKey = "short"
	_, err = NewApp(cfg, Stores{}, nil, nil)
	assert.Error(t, err)
}
