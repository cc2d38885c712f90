package usecase

import (
	"context"
	"log"
	"time"

	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

var validStatuses = []string{"new", "read", "responded"}

type MessagesPage struct {
	Messages []repository.ContactMessage
	Total    int
	Showing  int
	Skip     int
	Limit    int
	HasMore  bool
}

type DashboardStats struct {
	TotalMessages   int
	Recent7Days     int
	StatusBreakdown map[string]int
	LastUpdated     time.Time
}

type ExportResult struct {
	ExportDate time.Time
	Total      int
	Messages   []repository.ContactMessage
}

type AdminUsecase interface {
	ListMessages(ctx context.Context, status string, limit, skip int) (MessagesPage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	DashboardStats(ctx context.Context) (DashboardStats, error)
	Export(ctx context.Context) (ExportResult, error)
}

type Admin struct {
	messages repository.MessageRepository
	logger   *log.Logger

	now func() time.Time
}

func NewAdminUsecase(messages repository.MessageRepository, logger *log.Logger) *Admin {
	if logger == nil {
		logger = log.Default()
	}
	return &Admin{messages: messages, logger: logger, now: time.Now}
}

func (u *Admin) ListMessages(ctx context.Context, status string, limit, skip int) (MessagesPage, error) {
	if limit <= 0 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	msgs, err := u.messages.ListPage(ctx, status, limit, skip)
	if err != nil {
		u.logger.Printf("admin: list messages: %v", err)
		return MessagesPage{}, ErrInternal
	}
	total, err := u.messages.Count(ctx, status)
	if err != nil {
		u.logger.Printf("admin: count messages: %v", err)
		return MessagesPage{}, ErrInternal
	}

	return MessagesPage{
		Messages: msgs,
		Total:    total,
		Showing:  len(msgs),
		Skip:     skip,
		Limit:    limit,
		HasMore:  (skip + len(msgs)) < total,
	}, nil
}

// UpdateStatus rejects unknown statuses before touching storage.
func (u *Admin) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) error {
	if !isValidStatus(newStatus) {
		return &ValidationError{Detail: "Invalid status. Must be one of: ['new', 'read', 'responded']"}
	}

	matched, err := u.messages.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		u.logger.Printf("admin: update status: %v", err)
		return ErrInternal
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (u *Admin) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.messages.Delete(ctx, id)
	if err != nil {
		u.logger.Printf("admin: delete message: %v", err)
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// DashboardStats zero-fills the breakdown so every status is always present.
func (u *Admin) DashboardStats(ctx context.Context) (DashboardStats, error) {
	counts, err := u.messages.CountByStatus(ctx)
	if err != nil {
		u.logger.Printf("admin: count by status: %v", err)
		return DashboardStats{}, ErrInternal
	}

	breakdown := make(map[string]int, len(validStatuses))
	for _, s := range validStatuses {
		breakdown[s] = counts[s]
	}

	now := u.now().UTC()
	recent, err := u.messages.CountSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		u.logger.Printf("admin: count recent: %v", err)
		return DashboardStats{}, ErrInternal
	}

	total, err := u.messages.Count(ctx, "")
	if err != nil {
		u.logger.Printf("admin: count total: %v", err)
		return DashboardStats{}, ErrInternal
	}

	return DashboardStats{
		TotalMessages:   total,
		Recent7Days:     recent,
		StatusBreakdown: breakdown,
		LastUpdated:     now,
	}, nil
}

func (u *Admin) Export(ctx context.Context) (ExportResult, error) {
	msgs, err := u.messages.List(ctx, "")
	if err != nil {
		u.logger.Printf("admin: export messages: %v", err)
		return ExportResult{}, ErrInternal
	}
	return ExportResult{
		ExportDate: u.now().UTC(),
		Total:      len(msgs),
		Messages:   msgs,
	}, nil
}

func isValidStatus(s string) bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}
