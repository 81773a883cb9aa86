// Package email provides transactional email delivery for the MediWeb website.
//
// This package defines a Mailer interface with implementations for:
// - Postmark (production, via the Postmark transactional API)
// - DevMailer (development, writes messages to a local directory)
//
// The only consumer is the contact form pipeline, which sends a business
// notification and a customer confirmation for each valid submission.
package email

import (
	"context"
	"errors"
)

// Sentinel errors returned by Mailer implementations.
var (
	// ErrSendFailed indicates the provider rejected or failed the send.
	ErrSendFailed = errors.New("email: send failed")

	// ErrInvalidConfig indicates the mailer was constructed with incomplete
	// configuration.
	ErrInvalidConfig = errors.New("email: invalid config")
)

// Mailer delivers a single email message.
//
// Implementations report provider failures through the error return; the
// returned id is the provider's message identifier and is informational
// only (the caller logs it but never branches on it).
type Mailer interface {
	Send(ctx context.Context, msg Message) (id string, err error)
}

// Message is one outbound email.
type Message struct {
	To       string // Recipient email address
	ReplyTo  string // Optional reply-to override (empty uses the sender default)
	Subject  string // Subject line
	HTMLBody string // HTML content
	TextBody string // Plain text fallback
	Tag      string // Provider-side category tag (e.g., "contact-notification")
}
