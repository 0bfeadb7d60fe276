package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Benchlane"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"benchlane"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET" default:"dev-secret"`
	}

	// Fees for finalizing an engagement, in cents.
	Fees struct {
		StandardCents   int64 `envconfig:"FEE_STANDARD_CENTS" default:"49500"`
		DiscountedCents int64 `envconfig:"FEE_DISCOUNTED_CENTS" default:"19500"`
	}

	Payment struct {
		BaseURL       string `envconfig:"PAYMENT_BASE_URL" default:"http://localhost:9090"`
		APIKey        string `envconfig:"PAYMENT_API_KEY"`
		WebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET" default:"dev-webhook-secret"`
	}

	Invoicing struct {
		DueDays int `envconfig:"INVOICE_DUE_DAYS" default:"14"`
	}

	// Operator identity used by the TUI, which talks to the services
	// directly instead of going through the authenticated API.
	Operator struct {
		UserID    string `envconfig:"OPERATOR_USER_ID"`
		CompanyID string `envconfig:"OPERATOR_COMPANY_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
