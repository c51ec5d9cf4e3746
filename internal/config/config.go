// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port           int
	AppEnv         string
	FrontendOrigin string
	SessionSecret  string
	SessionTTL     time.Duration
	DatabaseURL    string
	RedisAddr      string
	CertPath       string
	CertKeyPath    string
	LogLevel       string
}

// Load reads the configuration from environment variables. Missing
// required secrets are a startup error; the process must not come up
// without them.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8443)
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CERT_PATH", "./cert/cert.pem")
	v.SetDefault("CERT_KEY_PATH", "./cert/key.pem")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Port:           v.GetInt("PORT"),
		AppEnv:         v.GetString("APP_ENV"),
		FrontendOrigin: v.GetString("FRONTEND_ORIGIN"),
		SessionSecret:  v.GetString("SESSION_SECRET_KEY"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		CertPath:       v.GetString("CERT_PATH"),
		CertKeyPath:    v.GetString("CERT_KEY_PATH"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FrontendOrigin == "" {
		return fmt.Errorf("FRONTEND_ORIGIN must be set")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET_KEY must be set")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
