package notifier

import (
	"context"
	"time"
)

// Payload carries everything the owner needs to follow up on a submission.
type Payload struct {
	Name                   string
	Email                  string
	Subject                string
	Message                string
	AvailabilityPreference string
	IPAddress              string
	SubmittedAt            time.Time
}

// Notifier dispatches a contact-form notification to the site owner.
// Implementations are best-effort collaborators: callers log failures but
// never fail the submission they are attached to.
type Notifier interface {
	Notify(ctx context.Context, p Payload) error
}
