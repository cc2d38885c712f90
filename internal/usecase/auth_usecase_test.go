package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, email, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return config.AuthConfig{
		AccessSecret:      "test-secret",
		AccessExpiresIn:   time.Hour,
		AdminEmail:        email,
		AdminPasswordHash: string(hash),
	}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	cfg := authConfig(t, "owner@example.com", "s3cret")
	svc := jwt.NewHMACService(cfg.AccessSecret, cfg.AccessExpiresIn)
	uc := NewAuthUsecase(cfg, svc, nil)

	res, err := uc.Login(context.Background(), "owner@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", res.TokenType)
	}
	if res.ExpiresIn != 3600 {
		t.Fatalf("expected 3600s expiry, got %d", res.ExpiresIn)
	}

	claims, err := svc.ValidateToken(res.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "owner@example.com" {
		t.Fatalf("unexpected claim email: %q", claims.Email)
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	cfg := authConfig(t, "owner@example.com", "s3cret")
	uc := NewAuthUsecase(cfg, jwt.NewHMACService(cfg.AccessSecret, cfg.AccessExpiresIn), nil)

	if _, err := uc.Login(context.Background(), "owner@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthUsecase_Login_WrongEmail(t *testing.T) {
	cfg := authConfig(t, "owner@example.com", "s3cret")
	uc := NewAuthUsecase(cfg, jwt.NewHMACService(cfg.AccessSecret, cfg.AccessExpiresIn), nil)

	if _, err := uc.Login(context.Background(), "intruder@example.com", "s3cret"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
