package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ClinicBook/config"
	"ClinicBook/config/db"
	"ClinicBook/config/logger"
	"ClinicBook/config/mail"
	"ClinicBook/config/redis"
	"ClinicBook/store/memory"
	mongostore "ClinicBook/store/mongo"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Config *config.Config

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context, database *mongo.Database) error

	// JobsHandler returns a function that stops the jobs it started.
	JobsEnabled bool
	JobsHandler func(app *App) func()

	WebServerEnabled    bool
	WebServerPreHandler func(r *gin.Engine, app *App)
}

/*
* Init logging, connect mongo (or memory) and redis
* Run migrations, wire services, start jobs
* Serve until SIGINT or SIGTERM then shut down gracefully
 */
func Start(opts Options) error {
	cfg := opts.Config
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, ping, closeStore, err := openStores(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	var cache redis.Cache = redis.NewMemory(cfg.CacheTTL)
	if cfg.CacheEnabled() {
		rc, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer rc.Close()
		cache = rc
		logger.Log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	mailer, err := mail.New(cfg)
	if err != nil {
		return err
	}

	app, err := NewApp(cfg, stores, cache, mailer)
	if err != nil {
		return err
	}
	app.Ping = ping

	if opts.JobsEnabled && opts.JobsHandler != nil {
		stopJobs := opts.JobsHandler(app)
		defer stopJobs()
	}

	if !opts.WebServerEnabled {
		return nil
	}
	return serve(ctx, cfg, app, opts.WebServerPreHandler)
}

func openStores(ctx context.Context, cfg *config.Config, opts Options) (Stores, func(context.Context) error, func(), error) {
	if cfg.Store == "memory" {
		logger.Log.Warn("using in-memory store, data is lost on restart")
		mem := memory.New()
		return Stores{
			Users:        mem.Users(),
			Doctors:      mem.Doctors(),
			Appointments: mem.Appointments(),
		}, func(context.Context) error { return nil }, func() {}, nil
	}

	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return Stores{}, nil, nil, err
	}
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Warn("mongodb disconnect failed", zap.Error(err))
		}
	}
	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx, database); err != nil {
			closeFn()
			return Stores{}, nil, nil, err
		}
	}
	return Stores{
		Users:        mongostore.NewUsers(database),
		Doctors:      mongostore.NewDoctors(database),
		Appointments: mongostore.NewAppointments(database),
	}, func(ctx context.Context) error { return client.Ping(ctx, nil) }, closeFn, nil
}

func serve(ctx context.Context, cfg *config.Config, app *App, pre func(*gin.Engine, *App)) error {
	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if pre != nil {
		pre(r, app)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
