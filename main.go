package main

import (
	"context"
	"log"

	"ClinicBook/config"
	"ClinicBook/config/logger"
	"ClinicBook/jobs"
	"ClinicBook/migrations"
	"ClinicBook/routes"
	"ClinicBook/server"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	startServer = server.Start
	loadConfig  = config.Load
	isTest      = false
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	options := server.Options{
		Config:           cfg,
		WebServerEnabled: true,

		MigrationEnabled: !isTest,
		MigrationHandler: func(ctx context.Context, database *mongo.Database) error {
			if isTest {
				return nil
			}
			return migrations.Run(ctx, database)
		},

		JobsEnabled: !isTest,
		JobsHandler: func(app *server.App) func() {
			if isTest {
				return func() {}
			}
			stop, err := jobs.StartOTPCleanup(map[string]jobs.OTPPurger{
				"users":   app.UserAuth,
				"doctors": app.DoctorAuth,
			})
			if err != nil {
				logger.Log.Error("otp cleanup not scheduled", zap.Error(err))
				return func() {}
			}
			return stop
		},

		WebServerPreHandler: func(r *gin.Engine, app *server.App) {
			routes.Routes(r, app)
		},
	}
	return startServer(options)
}
