package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port               int           `envconfig:"PORT" default:"8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL        string        `envconfig:"DATABASE_URL" required:"true"`
	DatabaseDriver     string        `envconfig:"DATABASE_DRIVER" default:"pgx"`
	AutoMigrate        bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	Version            string        `envconfig:"VERSION" default:"dev"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
	EventName          string        `envconfig:"EVENT_NAME" default:"Connect 2025"`
	EventStart         string        `envconfig:"EVENT_START" default:"22:30"`
	EventTimezone      string        `envconfig:"EVENT_TIMEZONE" default:""`
	SummaryInterval    time.Duration `envconfig:"SUMMARY_INTERVAL" default:"10s"`
	MailProvider       string        `envconfig:"MAIL_PROVIDER" default:"noop"`
	MailFromAddress    string        `envconfig:"MAIL_FROM_ADDRESS" default:""`
	MailFromName       string        `envconfig:"MAIL_FROM_NAME" default:""`
	AWSRegion          string        `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string        `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	AWSSecretAccessKey string        `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
}

// Load reads configuration from environment variables into a Config struct.
// Variables from a .env file in the working directory are applied first
// without overriding variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
