package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/mediweb/website/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Default addresses used when configuration leaves them unset. They point at
// real MediWeb inboxes so a misconfigured production deploy still routes
// somewhere visible rather than silently dropping mail.
const (
	DefaultRecipient = "post@mediweb.no"
	DefaultReplyTo   = "post@mediweb.no"
)

// =============================================================================
// Contact Mailer
// =============================================================================

// ContactMailer turns a validated contact submission into the two outbound
// messages: a notification to the business inbox and a confirmation to the
// submitter. It owns templating only; delivery goes through the injected
// Mailer.
type ContactMailer struct {
	mailer    Mailer
	templates *template.Template
	recipient string // business notification inbox
	replyTo   string // contact-back address shown to the customer
	logger    *slog.Logger
}

// NewContactMailer creates a ContactMailer using the embedded templates.
// Empty recipient or replyTo fall back to the MediWeb defaults.
func NewContactMailer(mailer Mailer, recipient, replyTo string, logger *slog.Logger) (*ContactMailer, error) {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	if replyTo == "" {
		replyTo = DefaultReplyTo
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &ContactMailer{
		mailer:    mailer,
		templates: templates,
		recipient: recipient,
		replyTo:   replyTo,
		logger:    logger,
	}, nil
}

// contactEmailData is the template context shared by both messages.
type contactEmailData struct {
	Name    string
	Email   string
	Labels  []string
	Message string
	ReplyTo string
	Year    int
}

func (m *ContactMailer) data(sub domain.ContactSubmission) contactEmailData {
	return contactEmailData{
		Name:    sub.Name,
		Email:   sub.Email,
		Labels:  domain.ServiceLabels(sub.Services),
		Message: sub.Message,
		ReplyTo: m.replyTo,
		Year:    time.Now().Year(),
	}
}

// SendNotification sends the business notification for a submission.
// The submitter's address becomes the reply-to so the team can answer
// directly from their inbox.
func (m *ContactMailer) SendNotification(ctx context.Context, sub domain.ContactSubmission) error {
	data := m.data(sub)

	htmlBody, err := m.render("contact_notification.html", data)
	if err != nil {
		return fmt.Errorf("failed to render notification template: %w", err)
	}

	textBody := fmt.Sprintf(`New contact form submission

Name: %s
Email: %s
Services: %s

Message:
%s
`, sub.Name, sub.Email, strings.Join(data.Labels, ", "), sub.Message)

	id, err := m.mailer.Send(ctx, Message{
		To:       m.recipient,
		ReplyTo:  sub.Email,
		Subject:  fmt.Sprintf("New inquiry from %s", sub.Name),
		HTMLBody: htmlBody,
		TextBody: textBody,
		Tag:      "contact-notification",
	})
	if err != nil {
		return fmt.Errorf("failed to send business notification: %w", err)
	}

	m.logger.Debug("business notification sent", "message_id", id)
	return nil
}

// SendConfirmation sends the acknowledgment to the submitter, restating
// what they asked for and explaining what happens next.
func (m *ContactMailer) SendConfirmation(ctx context.Context, sub domain.ContactSubmission) error {
	data := m.data(sub)

	htmlBody, err := m.render("contact_confirmation.html", data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation template: %w", err)
	}

	textBody := fmt.Sprintf(`Hi %s,

Thank you for reaching out to MediWeb Solutions. We have received your inquiry about: %s.

Your message:
%s

What happens next: we review every inquiry within one business day and get back to you by email. If anything is urgent in the meantime, reach us directly at %s.

Best regards,
The MediWeb Solutions Team
`, sub.Name, strings.Join(data.Labels, ", "), sub.Message, m.replyTo)

	id, err := m.mailer.Send(ctx, Message{
		To:       sub.Email,
		ReplyTo:  m.replyTo,
		Subject:  "Thank you for contacting MediWeb Solutions",
		HTMLBody: htmlBody,
		TextBody: textBody,
		Tag:      "contact-confirmation",
	})
	if err != nil {
		return fmt.Errorf("failed to send customer confirmation: %w", err)
	}

	m.logger.Debug("customer confirmation sent", "message_id", id)
	return nil
}

// render executes a named template into a string.
func (m *ContactMailer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
