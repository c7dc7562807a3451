package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Appwrite struct {
		Endpoint         string `env:"APPWRITE_ENDPOINT" env-default:"https://cloud.appwrite.io/v1"`
		Platform         string `env:"APPWRITE_PLATFORM" env-default:"com.fredd.aora"`
		ProjectID        string `env:"APPWRITE_PROJECT_ID"`
		DatabaseID       string `env:"APPWRITE_DATABASE_ID"`
		UserCollectionID string `env:"APPWRITE_USER_COLLECTION_ID"`
		PostCollectionID string `env:"APPWRITE_VIDEO_COLLECTION_ID"`
		StorageBucketID  string `env:"APPWRITE_STORAGE_BUCKET_ID"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Reconciler struct {
		// Cron expression for the orphan sweep, minute precision.
		Schedule  string `env:"RECONCILER_SCHEDULE" env-default:"0 3 * * *"`
		BatchSize int    `env:"RECONCILER_BATCH_SIZE" env-default:"50"`
	}
}

// New loads configuration from the environment, with .env as a fallback for
// local development.
func New() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", cfg); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read config: %w\n%s", err, help)
	}

	return cfg, nil
}

// GetDSN returns the Postgres connection string for database/sql.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass,
		c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// GetPgxURL returns the Postgres URL for pgxpool.
func (c *Config) GetPgxURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User, c.Postgres.Pass, c.Postgres.Host,
		c.Postgres.Port, c.Postgres.Name, c.Postgres.SslMode,
	)
}
