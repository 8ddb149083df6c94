package main

import (
	"context"
	"testing"
	"time"

	"ClinicBook/config"
	"ClinicBook/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FullCoverage(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	cfg := &config.Config{
		Store:         "memory",
		JWTSecret:     "secret",
		JWTExpiresIn:  time.Hour,
		EncryptionKey: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		SlotDayStart:  "09:00",
		SlotDayEnd:    "17:00",
		SlotMinutes:   60,
	}
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	defer func() { loadConfig = config.Load }()

	var capturedOpts server.Options
	startServer = func(opts server.Options) error {
		capturedOpts = opts
		return nil
	}
	defer func() { startServer = server.Start }()

	require.NoError(t, run())
	assert.False(t, capturedOpts.JobsEnabled)
	assert.False(t, capturedOpts.MigrationEnabled)
	assert.True(t, capturedOpts.WebServerEnabled)
	assert.Same(t, cfg, capturedOpts.Config)

	app, err := server.NewApp(cfg, server.Stores{}, nil, nil)
	require.NoError(t, err)
	capturedOpts.JobsHandler(app)()
	assert.NoError(t, capturedOpts.MigrationHandler(context.Background(), nil))
	capturedOpts.WebServerPreHandler(gin.New(), app)
}
