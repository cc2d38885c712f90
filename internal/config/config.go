package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Mail     MailConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	AccessSecret      string
	AccessExpiresIn   time.Duration
	AdminEmail        string
	AdminPasswordHash string
}

type MailConfig struct {
	SenderEmail    string
	RecipientEmail string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		CORSOrigins: opt("CORS_ORIGINS"),
	}
	if cfg.App.CORSOrigins == "" {
		cfg.App.CORSOrigins = "*"
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: req("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationSeconds(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.Auth = AuthConfig{
		AccessSecret:      req("JWT_ACCESS_SECRET"),
		AccessExpiresIn:   durationSeconds(opt("JWT_ACCESS_EXPIRES_IN"), time.Hour),
		AdminEmail:        req("ADMIN_EMAIL"),
		AdminPasswordHash: req("ADMIN_PASSWORD_HASH"),
	}

	cfg.Mail = MailConfig{
		SenderEmail:    opt("SENDER_EMAIL"),
		RecipientEmail: opt("RECIPIENT_EMAIL"),
	}
	if cfg.Mail.SenderEmail == "" {
		cfg.Mail.SenderEmail = "portfolio@localhost"
	}
	if cfg.Mail.RecipientEmail == "" {
		cfg.Mail.RecipientEmail = cfg.Auth.AdminEmail
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}
