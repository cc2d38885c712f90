package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestStatusCheckUsecase_Create_TrimsName(t *testing.T) {
	repo := &mockStatusCheckRepo{}
	uc := NewStatusCheckUsecase(repo, nil)

	s, err := uc.Create(context.Background(), "  web-frontend  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.ClientName != "web-frontend" {
		t.Fatalf("expected trimmed name, got %q", s.ClientName)
	}
	if len(repo.created) != 1 {
		t.Fatalf("check not persisted")
	}
}

func TestStatusCheckUsecase_Create_EmptyName(t *testing.T) {
	uc := NewStatusCheckUsecase(&mockStatusCheckRepo{}, nil)

	if _, err := uc.Create(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatusCheckUsecase_Create_StorageError(t *testing.T) {
	uc := NewStatusCheckUsecase(&mockStatusCheckRepo{createErr: errors.New("down")}, nil)

	if _, err := uc.Create(context.Background(), "client"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
