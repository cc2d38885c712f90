package usecase

import (
	"context"
	"crypto/subtle"
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

// Auth authenticates the single site owner against credentials from config
// and issues short-lived access tokens for the admin surface.
type Auth struct {
	cfg    config.AuthConfig
	jwt    jwt.Service
	logger *log.Logger
}

func NewAuthUsecase(cfg config.AuthConfig, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	if logger == nil {
		logger = log.Default()
	}
	return &Auth{cfg: cfg, jwt: jwtSvc, logger: logger}
}

func (u *Auth) Login(_ context.Context, email, password string) (LoginResult, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.cfg.AdminEmail)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(u.cfg.AdminPasswordHash), []byte(password))
	if !emailOK || passErr != nil {
		return LoginResult{}, ErrUnauthorized
	}

	token, err := u.jwt.GenerateAccessToken(email)
	if err != nil {
		u.logger.Printf("auth: generate token: %v", err)
		return LoginResult{}, ErrInternal
	}

	return LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(u.jwt.AccessExpiresIn().Seconds()),
	}, nil
}
