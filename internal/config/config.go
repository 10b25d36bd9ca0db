package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"HealthX"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8001"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`

	// TokenSecret signs access tokens. No default on purpose: the process
	// must refuse to start without an operator-supplied key.
	TokenSecret string        `env:"TOKEN_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"720h"`

	// AdminEmails lists accounts allowed to read the admin dashboard.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// PlatformSampleLimit caps how many purchases the dashboard fetches when
	// summing funds and tokens. Counts stay exact regardless of the cap.
	PlatformSampleLimit int `env:"PLATFORM_SAMPLE_LIMIT" envDefault:"10000"`
	RecentPurchases     int `env:"RECENT_PURCHASES" envDefault:"20"`
	RecentUsers         int `env:"RECENT_USERS" envDefault:"10"`

	LoginRatePerMinute int           `env:"LOGIN_RATE_PER_MINUTE" envDefault:"5"`
	ShutdownPeriod     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if len(cfg.TokenSecret) < 16 {
		return Config{}, fmt.Errorf("TOKEN_SECRET must be at least 16 bytes")
	}

	for i, email := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.ToLower(strings.TrimSpace(email))
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsAdmin reports whether the email belongs to the configured admin allowlist.
func (c Config) IsAdmin(email string) bool {
	email = strings.ToLower(email)
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
