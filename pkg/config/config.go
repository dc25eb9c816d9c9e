package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	FirebaseProject            string `env:"FIREBASE_PROJECT_ID"`
	FirebaseApiKey             string `env:"FIREBASE_API_KEY"`
	FirebaseServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	StorageBucket              string `env:"STORAGE_BUCKET"`

	StoreDriver  string        `env:"STORE_DRIVER" envDefault:"firestore"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`

	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"120h"`
	Timezone          string        `env:"TIMEZONE" envDefault:"Asia/Jakarta"`
	LoginRateLimit    int           `env:"LOGIN_RATE_LIMIT" envDefault:"5"`

	DevAdminEmail    string `env:"DEV_ADMIN_EMAIL" envDefault:"admin@pasaratsiri.local"`
	DevAdminPassword string `env:"DEV_ADMIN_PASSWORD" envDefault:"admin12345"`

	Location *time.Location
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	switch c.StoreDriver {
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when STORE_DRIVER=%s", StoreFirestore)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	if c.SessionTTL < 5*time.Minute || c.SessionTTL > 14*24*time.Hour {
		// Firebase session cookies must live between 5 minutes and 2 weeks.
		return fmt.Errorf("SESSION_TTL must be between 5m and 336h, got %s", c.SessionTTL)
	}

	if c.LoginRateLimit <= 0 {
		c.LoginRateLimit = 5
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) UsesMemoryStore() bool {
	return c.StoreDriver == StoreMemory
}
