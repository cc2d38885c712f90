package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

func messageFixtures(n int) []repository.ContactMessage {
	msgs := make([]repository.ContactMessage, 0, n)
	for i := 0; i < n; i++ {
		msgs = append(msgs, repository.ContactMessage{
			ID:      uuid.New(),
			Name:    "Sender",
			Email:   "sender@example.com",
			Subject: "Hello",
			Message: "Body",
			Status:  "new",
		})
	}
	return msgs
}

func TestAdminUsecase_ListMessages_Pagination(t *testing.T) {
	repo := &mockMessageRepo{items: messageFixtures(8), total: 8}
	uc := NewAdminUsecase(repo, nil)

	page, err := uc.ListMessages(context.Background(), "", 3, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Showing != 3 || page.Skip != 5 || page.Limit != 3 || page.Total != 8 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.HasMore {
		t.Fatalf("skip+showing equals total, has_more must be false")
	}
}

func TestAdminUsecase_ListMessages_HasMore(t *testing.T) {
	repo := &mockMessageRepo{items: messageFixtures(10), total: 10}
	uc := NewAdminUsecase(repo, nil)

	page, err := uc.ListMessages(context.Background(), "", 4, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !page.HasMore {
		t.Fatalf("expected has_more=true with 6 remaining")
	}
}

func TestAdminUsecase_ListMessages_DefaultLimit(t *testing.T) {
	repo := &mockMessageRepo{items: messageFixtures(2), total: 2}
	uc := NewAdminUsecase(repo, nil)

	page, err := uc.ListMessages(context.Background(), "", 0, -3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Limit != 50 || page.Skip != 0 {
		t.Fatalf("defaults not applied: limit=%d skip=%d", page.Limit, page.Skip)
	}
}

func TestAdminUsecase_ListMessages_StorageError(t *testing.T) {
	uc := NewAdminUsecase(&mockMessageRepo{listErr: errors.New("down")}, nil)

	if _, err := uc.ListMessages(context.Background(), "", 10, 0); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAdminUsecase_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &mockMessageRepo{matched: true}
	uc := NewAdminUsecase(repo, nil)

	err := uc.UpdateStatus(context.Background(), uuid.New(), "archived")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Detail != "Invalid status. Must be one of: ['new', 'read', 'responded']" {
		t.Fatalf("unexpected detail: %v", err)
	}
	if repo.lastStatus != "" {
		t.Fatalf("storage must not be touched on invalid status")
	}
}

func TestAdminUsecase_UpdateStatus_Transitions(t *testing.T) {
	for _, status := range []string{"new", "read", "responded"} {
		repo := &mockMessageRepo{matched: true}
		uc := NewAdminUsecase(repo, nil)
		id := uuid.New()

		if err := uc.UpdateStatus(context.Background(), id, status); err != nil {
			t.Fatalf("status %q: unexpected err: %v", status, err)
		}
		if repo.lastStatusID != id || repo.lastStatus != status {
			t.Fatalf("status %q not forwarded", status)
		}
	}
}

func TestAdminUsecase_UpdateStatus_UnknownMessage(t *testing.T) {
	uc := NewAdminUsecase(&mockMessageRepo{matched: false}, nil)

	if err := uc.UpdateStatus(context.Background(), uuid.New(), "read"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminUsecase_DeleteMessage_SecondDeleteNotFound(t *testing.T) {
	repo := &mockMessageRepo{deleted: true}
	uc := NewAdminUsecase(repo, nil)
	id := uuid.New()

	if err := uc.DeleteMessage(context.Background(), id); err != nil {
		t.Fatalf("first delete: unexpected err: %v", err)
	}
	if err := uc.DeleteMessage(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestAdminUsecase_DashboardStats_ZeroFilledBreakdown(t *testing.T) {
	repo := &mockMessageRepo{
		total:    5,
		recent:   2,
		byStatus: map[string]int{"new": 3, "responded": 2},
	}
	uc := NewAdminUsecase(repo, nil)
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	stats, err := uc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stats.StatusBreakdown) != 3 {
		t.Fatalf("breakdown must list every status: %v", stats.StatusBreakdown)
	}
	if stats.StatusBreakdown["read"] != 0 {
		t.Fatalf("missing statuses must be zero-filled: %v", stats.StatusBreakdown)
	}

	sum := 0
	for _, c := range stats.StatusBreakdown {
		sum += c
	}
	if sum != stats.TotalMessages {
		t.Fatalf("breakdown sums to %d, total is %d", sum, stats.TotalMessages)
	}
	if stats.Recent7Days != 2 {
		t.Fatalf("unexpected recent count: %d", stats.Recent7Days)
	}
	if !stats.LastUpdated.Equal(now) {
		t.Fatalf("unexpected last_updated: %v", stats.LastUpdated)
	}
}

func TestAdminUsecase_Export(t *testing.T) {
	repo := &mockMessageRepo{items: messageFixtures(4)}
	uc := NewAdminUsecase(repo, nil)

	res, err := uc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 4 || len(res.Messages) != 4 {
		t.Fatalf("unexpected export: total=%d len=%d", res.Total, len(res.Messages))
	}
	if res.ExportDate.IsZero() {
		t.Fatalf("export date not set")
	}
}

func TestAdminUsecase_Export_StorageError(t *testing.T) {
	uc := NewAdminUsecase(&mockMessageRepo{listErr: errors.New("down")}, nil)

	if _, err := uc.Export(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
