package usecase

import (
	"context"
	"log"
	"time"

	"portfolio-api/internal/notifier"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

type SubmitInput struct {
	Name                   string
	Email                  string
	Subject                string
	Message                string
	AvailabilityPreference *string
	ClientIP               string
}

func (in SubmitInput) document() map[string]any {
	doc := map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"subject": in.Subject,
		"message": in.Message,
	}
	if in.AvailabilityPreference != nil {
		doc["availability_preference"] = *in.AvailabilityPreference
	}
	return doc
}

type SubmitResult struct {
	MessageID        string
	NotificationSent bool
}

type ContactUsecase interface {
	Submit(ctx context.Context, input SubmitInput) (SubmitResult, error)
	ListMessages(ctx context.Context, status string) ([]repository.ContactMessage, error)
}

type Contact struct {
	messages repository.MessageRepository
	notify   notifier.Notifier
	logger   *log.Logger

	now func() time.Time
}

func NewContactUsecase(messages repository.MessageRepository, n notifier.Notifier, logger *log.Logger) *Contact {
	if logger == nil {
		logger = log.Default()
	}
	return &Contact{
		messages: messages,
		notify:   n,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates, persists, then notifies. The stored message is
// authoritative: a notification failure is logged and reported in the
// result but never fails the request.
func (u *Contact) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	if err := validateSubmission(input); err != nil {
		return SubmitResult{}, err
	}

	var ip *string
	if input.ClientIP != "" {
		ip = &input.ClientIP
	}

	msg := repository.ContactMessage{
		ID:                     uuid.New(),
		Name:                   input.Name,
		Email:                  input.Email,
		Subject:                input.Subject,
		Message:                input.Message,
		AvailabilityPreference: input.AvailabilityPreference,
		SubmittedAt:            u.now().UTC(),
		Status:                 "new",
		IPAddress:              ip,
	}

	if err := u.messages.Create(ctx, msg); err != nil {
		u.logger.Printf("contact: create message: %v", err)
		return SubmitResult{}, ErrInternal
	}

	u.logger.Printf("contact: message submitted by %s", msg.Email)

	availability := ""
	if input.AvailabilityPreference != nil {
		availability = *input.AvailabilityPreference
	}
	sent := true
	if err := u.notify.Notify(ctx, notifier.Payload{
		Name:                   msg.Name,
		Email:                  msg.Email,
		Subject:                msg.Subject,
		Message:                msg.Message,
		AvailabilityPreference: availability,
		IPAddress:              input.ClientIP,
		SubmittedAt:            msg.SubmittedAt,
	}); err != nil {
		sent = false
		u.logger.Printf("contact: notification failed, message was saved: %v", err)
	}

	return SubmitResult{MessageID: msg.ID.String(), NotificationSent: sent}, nil
}

func (u *Contact) ListMessages(ctx context.Context, status string) ([]repository.ContactMessage, error) {
	msgs, err := u.messages.List(ctx, status)
	if err != nil {
		u.logger.Printf("contact: list messages: %v", err)
		return []repository.ContactMessage{}, nil
	}
	return msgs, nil
}
