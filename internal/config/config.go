package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultAddr          = ":8080"
	defaultBaseURL       = "http://localhost:8080"
	defaultDatabaseURL   = "donorblog.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultDonationMin   = "1"
	defaultCurrency      = "pln"
	defaultLocale        = "uk"
	defaultSMTPPort      = "587"
	defaultMailFrom      = "no-reply@localhost"
)

type Config struct {
	AppEnv      string
	Addr        string
	BaseURL     string
	DatabaseURL string

	JWTSecret string

	DonationMin      decimal.Decimal
	DonationMax      decimal.Decimal // zero means no maximum
	DonationCurrency string
	DefaultLocale    string

	StripeSecretKey     string
	StripeWebhookSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	ContactEmail string
	DonationsBCC []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", defaultBaseURL), "/")
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.DonationMin, err = parseDecimalEnv("DONATION_MIN", defaultDonationMin)
	if err != nil {
		return nil, err
	}
	cfg.DonationMax, err = parseDecimalEnv("DONATION_MAX", "0")
	if err != nil {
		return nil, err
	}
	cfg.DonationCurrency = strings.ToLower(getEnv("DONATION_CURRENCY", defaultCurrency))
	cfg.DefaultLocale = getEnv("DEFAULT_LOCALE", defaultLocale)

	cfg.StripeSecretKey = strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	cfg.StripeWebhookSecret = strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET"))

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return nil, err
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.MailFrom = getEnv("MAIL_FROM", defaultMailFrom)
	cfg.ContactEmail = getEnv("CONTACT_EMAIL", cfg.MailFrom)
	if bcc := strings.TrimSpace(os.Getenv("DONATIONS_BCC")); bcc != "" {
		for _, addr := range strings.Split(bcc, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				cfg.DonationsBCC = append(cfg.DonationsBCC, addr)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if !cfg.DonationMin.IsPositive() {
		return fmt.Errorf("DONATION_MIN must be > 0")
	}
	if !cfg.DonationMax.IsZero() && cfg.DonationMax.LessThan(cfg.DonationMin) {
		return fmt.Errorf("DONATION_MAX must be >= DONATION_MIN")
	}
	if len(cfg.DonationCurrency) != 3 {
		return fmt.Errorf("DONATION_CURRENCY must be a 3-letter code, got %q", cfg.DonationCurrency)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", cfg.SMTPPort)
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.StripeSecretKey == "" {
			return fmt.Errorf("in prod/release STRIPE_SECRET_KEY must be set")
		}
		if cfg.StripeWebhookSecret == "" {
			return fmt.Errorf("in prod/release STRIPE_WEBHOOK_SECRET must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDecimalEnv(name, fallback string) (decimal.Decimal, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
