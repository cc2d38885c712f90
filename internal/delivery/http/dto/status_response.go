package dto

import (
	"time"

	"portfolio-api/internal/repository"
)

type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromStatusCheck(s repository.StatusCheck) StatusCheck {
	return StatusCheck{
		ID:         s.ID.String(),
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp,
	}
}

func FromStatusChecks(checks []repository.StatusCheck) []StatusCheck {
	out := make([]StatusCheck, 0, len(checks))
	for _, s := range checks {
		out = append(out, FromStatusCheck(s))
	}
	return out
}
