package dto

import (
	"time"

	"portfolio-api/internal/repository"
)

type ContactMessage struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Subject                string     `json:"subject"`
	Message                string     `json:"message"`
	AvailabilityPreference *string    `json:"availability_preference"`
	SubmittedAt            time.Time  `json:"submitted_at"`
	Status                 string     `json:"status"`
	IPAddress              *string    `json:"ip_address"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

type MessagesResponse struct {
	Messages []ContactMessage `json:"messages"`
	Total    int              `json:"total"`
}

func FromContactMessage(m repository.ContactMessage) ContactMessage {
	return ContactMessage{
		ID:                     m.ID.String(),
		Name:                   m.Name,
		Email:                  m.Email,
		Subject:                m.Subject,
		Message:                m.Message,
		AvailabilityPreference: m.AvailabilityPreference,
		SubmittedAt:            m.SubmittedAt,
		Status:                 m.Status,
		IPAddress:              m.IPAddress,
		UpdatedAt:              m.UpdatedAt,
	}
}

func FromContactMessages(msgs []repository.ContactMessage) []ContactMessage {
	out := make([]ContactMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromContactMessage(m))
	}
	return out
}
