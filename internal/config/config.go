package config

import (
	"time"

	"github.com/spf13/viper"
)

const DefaultDatabasePath = "./openshelf.db"

type (
	Config struct {
		HTTP
		Database
		Auth
		Storage
		Sweep
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		TokenSecret   string
		TokenIssuer   string
		TokenLifetime time.Duration
		BcryptCost    int
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	Storage struct {
		UploadsDir string
	}
	Sweep struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("uploads_dir", "./uploads")

	// Auth defaults
	v.SetDefault("auth_token_secret", "")
	v.SetDefault("auth_token_issuer", "openshelf")
	v.SetDefault("auth_token_lifetime", "24h")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_secure_cookies", true)

	// Overdue sweep defaults
	v.SetDefault("sweep_enabled", true)
	v.SetDefault("sweep_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			TokenSecret:   v.GetString("AUTH_TOKEN_SECRET"),
			TokenIssuer:   v.GetString("AUTH_TOKEN_ISSUER"),
			TokenLifetime: v.GetDuration("AUTH_TOKEN_LIFETIME"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies: v.GetBool("AUTH_SECURE_COOKIES"),
		},
		Storage: Storage{
			UploadsDir: v.GetString("UPLOADS_DIR"),
		},
		Sweep: Sweep{
			Enabled:  v.GetBool("SWEEP_ENABLED"),
			Schedule: v.GetString("SWEEP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
