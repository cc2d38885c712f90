package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

type StatusCheckUsecase interface {
	Create(ctx context.Context, clientName string) (repository.StatusCheck, error)
	List(ctx context.Context) ([]repository.StatusCheck, error)
}

type StatusCheck struct {
	repo   repository.StatusCheckRepository
	logger *log.Logger

	now func() time.Time
}

func NewStatusCheckUsecase(repo repository.StatusCheckRepository, logger *log.Logger) *StatusCheck {
	if logger == nil {
		logger = log.Default()
	}
	return &StatusCheck{repo: repo, logger: logger, now: time.Now}
}

func (u *StatusCheck) Create(ctx context.Context, clientName string) (repository.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return repository.StatusCheck{}, &ValidationError{Detail: "client_name must not be empty"}
	}

	s := repository.StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  u.now().UTC(),
	}
	if err := u.repo.Create(ctx, s); err != nil {
		u.logger.Printf("status: create check: %v", err)
		return repository.StatusCheck{}, ErrInternal
	}
	return s, nil
}

func (u *StatusCheck) List(ctx context.Context) ([]repository.StatusCheck, error) {
	checks, err := u.repo.List(ctx, 1000)
	if err != nil {
		u.logger.Printf("status: list checks: %v", err)
		return nil, ErrInternal
	}
	return checks, nil
}
