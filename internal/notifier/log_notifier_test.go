package notifier

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/config"
)

func samplePayload() Payload {
	return Payload{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Subject:     "Project inquiry",
		Message:     "Hello <world> & co",
		IPAddress:   "203.0.113.7",
		SubmittedAt: time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC),
	}
}

func TestLogNotifier_NotifyNeverFails(t *testing.T) {
	n := NewLogNotifier(config.MailConfig{SenderEmail: "noreply@example.com", RecipientEmail: "owner@example.com"}, nil)

	if err := n.Notify(context.Background(), samplePayload()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestTextBody_ContainsFields(t *testing.T) {
	body := TextBody(samplePayload())

	for _, want := range []string{
		"Name: Jane Doe",
		"Email: jane@example.com",
		"Subject: Project inquiry",
		"Availability: No preference",
		"Hello <world> & co",
		"March 10, 2026 at 3:30 PM",
		"IP Address: 203.0.113.7",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("text body missing %q:\n%s", want, body)
		}
	}
}

func TestHTMLBody_EscapesContent(t *testing.T) {
	body := HTMLBody(samplePayload())

	if strings.Contains(body, "Hello <world>") {
		t.Fatalf("html body not escaped:\n%s", body)
	}
	if !strings.Contains(body, "Hello &lt;world&gt; &amp; co") {
		t.Fatalf("escaped message missing:\n%s", body)
	}
}

func TestAvailabilityPreferenceRendered(t *testing.T) {
	p := samplePayload()
	p.AvailabilityPreference = "Weekday evenings"

	if !strings.Contains(TextBody(p), "Availability: Weekday evenings") {
		t.Fatalf("availability missing from text body")
	}
	if !strings.Contains(HTMLBody(p), "Weekday evenings") {
		t.Fatalf("availability missing from html body")
	}
}
