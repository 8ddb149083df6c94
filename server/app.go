package server

import (
	"context"
	"time"

	"ClinicBook/config"
	"ClinicBook/config/encryption"
	"ClinicBook/config/jwt"
	"ClinicBook/config/mail"
	"ClinicBook/config/redis"
	"ClinicBook/services"
	"ClinicBook/store"
)

// App holds the wired services handed to routes and jobs.
type App struct {
	Config       *config.Config
	Tokens       *jwt.Issuer
	UserAuth     *services.Auth
	DoctorAuth   *services.Auth
	Registration *services.Registration
	Directory    *services.Directory
	Slots        *services.Slots
	Appointments *services.Appointments

	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
}

type Stores struct {
	Users        store.Users
	Doctors      store.Doctors
	Appointments store.Appointments
}

/*
* Build the cipher and token issuer from config
* Give users and doctors their own Auth over their own collection
 */
func NewApp(cfg *config.Config, stores Stores, cache redis.Cache, mailer mail.Mailer) (*App, error) {
	cipher, err := encryption.New(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	slots, err := services.NewSlots(stores.Doctors, services.SlotTemplate{
		Start: cfg.SlotDayStart,
		End:   cfg.SlotDayEnd,
		Step:  time.Duration(cfg.SlotMinutes) * time.Minute,
	})
	if err != nil {
		return nil, err
	}
	tokens := jwt.NewIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

	return &App{
		Config:       cfg,
		Tokens:       tokens,
		UserAuth:     services.NewAuth("user", stores.Users, mailer, tokens, cfg.MFAIssuer),
		DoctorAuth:   services.NewAuth("doctor", stores.Doctors, mailer, tokens, cfg.MFAIssuer),
		Registration: services.NewRegistration(stores.Users, stores.Doctors, cipher, cache),
		Directory:    services.NewDirectory(stores.Doctors, cipher, cache),
		Slots:        slots,
		Appointments: services.NewAppointments(stores.Appointments, stores.Users, stores.Doctors),
		Ping:         func(context.Context) error { return nil },
	}, nil
}
