package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "Portfolio API")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8000")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("DB_SSL_MODE", "")
	t.Setenv("REDIS_TTL", "")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "")
	t.Setenv("SENDER_EMAIL", "")
	t.Setenv("RECIPIENT_EMAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.CORSOrigins != "*" {
		t.Fatalf("expected wildcard CORS default, got %q", cfg.App.CORSOrigins)
	}
	if cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("expected sslmode disable, got %q", cfg.Database.DBSSLMode)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("expected 600s cache TTL, got %v", cfg.Redis.TTL)
	}
	if cfg.Auth.AccessExpiresIn != time.Hour {
		t.Fatalf("expected 1h token expiry, got %v", cfg.Auth.AccessExpiresIn)
	}
	if cfg.Mail.RecipientEmail != "owner@example.com" {
		t.Fatalf("recipient must default to admin email, got %q", cfg.Mail.RecipientEmail)
	}
}

func TestLoad_MissingKeysListed(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing keys")
	}
	msg := err.Error()
	if !strings.Contains(msg, "DB_HOST") || !strings.Contains(msg, "JWT_ACCESS_SECRET") {
		t.Fatalf("missing keys not named: %v", err)
	}
}

func TestLoad_ExpirySeconds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "900")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Auth.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("expected 15m expiry, got %v", cfg.Auth.AccessExpiresIn)
	}
}
