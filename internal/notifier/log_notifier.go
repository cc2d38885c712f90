package notifier

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"portfolio-api/internal/config"
)

// LogNotifier formats the full dual-part notification (plain text + HTML)
// and logs the dispatch instead of sending it. A real SMTP or transactional
// email implementation replaces it behind the Notifier interface without
// touching the contact service.
type LogNotifier struct {
	sender    string
	recipient string
	logger    *log.Logger
}

func NewLogNotifier(cfg config.MailConfig, logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{
		sender:    cfg.SenderEmail,
		recipient: cfg.RecipientEmail,
		logger:    logger,
	}
}

func (n *LogNotifier) Notify(_ context.Context, p Payload) error {
	subject := "New Portfolio Contact: " + p.Subject

	text := TextBody(p)
	htmlBody := HTMLBody(p)

	preview := p.Message
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}

	n.logger.Printf("[Mailer] contact notification (log only) from=%s to=%s subject=%q", n.sender, n.recipient, subject)
	n.logger.Printf("[Mailer] sender: %s <%s> preview=%q availability=%q", p.Name, p.Email, preview, availabilityOrDefault(p))
	n.logger.Printf("[Mailer] bodies: text=%dB html=%dB", len(text), len(htmlBody))

	return nil
}

func availabilityOrDefault(p Payload) string {
	if strings.TrimSpace(p.AvailabilityPreference) == "" {
		return "No preference"
	}
	return p.AvailabilityPreference
}

// TextBody renders the plain-text part of the notification.
func TextBody(p Payload) string {
	var b strings.Builder
	b.WriteString("NEW PORTFOLIO CONTACT SUBMISSION\n")
	b.WriteString("================================\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	fmt.Fprintf(&b, "Subject: %s\n", p.Subject)
	fmt.Fprintf(&b, "Availability: %s\n\n", availabilityOrDefault(p))
	fmt.Fprintf(&b, "Message:\n%s\n\n", p.Message)
	fmt.Fprintf(&b, "Submitted: %s\n", p.SubmittedAt.UTC().Format("January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "IP Address: %s\n\n", p.IPAddress)
	fmt.Fprintf(&b, "Reply directly to: %s\n", p.Email)
	return b.String()
}

// HTMLBody renders the rich part of the notification.
func HTMLBody(p Payload) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	b.WriteString("<h2>New Portfolio Contact Submission</h2>\n")
	fmt.Fprintf(&b, "<p>Received at %s</p>\n", p.SubmittedAt.UTC().Format("January 2, 2006 at 3:04 PM"))
	writeField(&b, "Name", p.Name)
	writeField(&b, "Email", p.Email)
	writeField(&b, "Subject", p.Subject)
	writeField(&b, "Availability Preference", availabilityOrDefault(p))
	writeField(&b, "Message", p.Message)
	writeField(&b, "IP Address", p.IPAddress)
	fmt.Fprintf(&b, "<p>Reply directly to: <strong>%s</strong></p>\n", html.EscapeString(p.Email))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", html.EscapeString(label), html.EscapeString(value))
}
