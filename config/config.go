package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	Store         string
	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	JWTSecret    string
	JWTExpiresIn time.Duration

	EncryptionKey string
	MFAIssuer     string

	MailProvider   string
	MailFrom       string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SendGridAPIKey string

	SlotDayStart string
	SlotDayEnd   string
	SlotMinutes  int

	CORSOrigins []string
}

/*
* Load the .env file if present, then read the environment
* JWT_SECRET and ENCRYPTION_KEY are mandatory
* Every parse failure is returned so that startup fails
 */
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "production"),
		Port:           getEnv("PORT", "5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Store:          strings.ToLower(getEnv("STORE", "mongo")),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "clinic"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		EncryptionKey:  os.Getenv("ENCRYPTION_KEY"),
		MFAIssuer:      getEnv("MFA_ISSUER", "ClinicBook"),
		MailProvider:   strings.ToLower(getEnv("MAIL_PROVIDER", "log")),
		MailFrom:       getEnv("MAIL_FROM", "no-reply@clinicbook.app"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SlotDayStart:   getEnv("SLOT_DAY_START", "09:00"),
		SlotDayEnd:     getEnv("SLOT_DAY_END", "17:00"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	var errs []error
	var err error

	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.SMTPPort, err = getInt("SMTP_PORT", 587); err != nil {
		errs = append(errs, err)
	}
	if cfg.SlotMinutes, err = getInt("SLOT_MINUTES", 60); err != nil {
		errs = append(errs, err)
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 5*time.Minute); err != nil {
		errs = append(errs, err)
	}
	if cfg.JWTExpiresIn, err = getDuration("JWT_EXPIRES_IN", time.Hour); err != nil {
		errs = append(errs, err)
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if len(c.EncryptionKey) != 64 {
		errs = append(errs, errors.New("ENCRYPTION_KEY must be 64 hex characters"))
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.SlotMinutes <= 0 {
		errs = append(errs, errors.New("SLOT_MINUTES must be positive"))
	}
	switch c.Store {
	case "mongo", "memory":
	default:
		errs = append(errs, fmt.Errorf("unknown STORE %q", c.Store))
	}
	switch c.MailProvider {
	case "smtp":
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP_HOST is required for the smtp mail provider"))
		}
	case "sendgrid":
		if c.SendGridAPIKey == "" {
			errs = append(errs, errors.New("SENDGRID_API_KEY is required for the sendgrid mail provider"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider))
	}
	return errors.Join(errs...)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
