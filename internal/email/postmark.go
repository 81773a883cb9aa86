package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrz1836/postmark"
)

// =============================================================================
// Postmark Mailer Implementation
// =============================================================================

// PostmarkConfig holds the credentials and sender identity for the Postmark
// transactional API.
type PostmarkConfig struct {
	ServerToken  string // Postmark server API token
	AccountToken string // Postmark account API token
	Sender       string // From address for all outbound mail
}

// PostmarkMailer sends email through the Postmark transactional API.
type PostmarkMailer struct {
	client *postmark.Client
	sender string
	logger *slog.Logger
}

// NewPostmarkMailer creates a Postmark-backed mailer.
//
// All configuration fields are required: a mailer with missing credentials
// would fail on every send, so construction fails fast instead. Development
// environments without Postmark credentials should use NewDevMailer.
func NewPostmarkMailer(cfg PostmarkConfig, logger *slog.Logger) (*PostmarkMailer, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: account token is required", ErrInvalidConfig)
	}
	if cfg.Sender == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrInvalidConfig)
	}

	return &PostmarkMailer{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		sender: cfg.Sender,
		logger: logger,
	}, nil
}

// Send delivers the message through Postmark.
//
// Postmark reports failures two ways: a transport-level error, or a non-zero
// ErrorCode in an otherwise successful response. Both collapse into
// ErrSendFailed so callers only handle one failure shape.
func (m *PostmarkMailer) Send(ctx context.Context, msg Message) (string, error) {
	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:     m.sender,
		ReplyTo:  msg.ReplyTo,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	})
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return "", errors.Join(ErrSendFailed,
			fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}

	m.logger.Info("email sent",
		"to", msg.To,
		"subject", msg.Subject,
		"message_id", resp.MessageID,
	)

	return resp.MessageID, nil
}

// Compile-time interface check
var _ Mailer = (*PostmarkMailer)(nil)
