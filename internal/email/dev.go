package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Development Mailer Implementation
// =============================================================================

// DevMailer implements Mailer for local development. Instead of calling a
// provider it writes each message to a directory as an HTML file plus a JSON
// metadata file, so the rendered emails can be opened in a browser. The
// server falls back to this mailer when Postmark credentials are unset,
// which keeps local startup from requiring any secrets.
type DevMailer struct {
	dir    string
	logger *slog.Logger
}

// NewDevMailer creates a mailer that saves messages under dir.
// The directory is created on first send if it doesn't exist.
func NewDevMailer(dir string, logger *slog.Logger) *DevMailer {
	return &DevMailer{dir: dir, logger: logger}
}

// devMetadata is the sidecar JSON written next to each saved HTML body.
type devMetadata struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	TextBody  string `json:"text_body"`
}

// Send writes the message to disk and returns a generated message id.
func (m *DevMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrSendFailed, err)
	}

	id := uuid.NewString()
	now := time.Now()

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	htmlPath := filepath.Join(m.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.HTMLBody), 0644); err != nil {
		return "", fmt.Errorf("%w: write html: %v", ErrSendFailed, err)
	}

	meta := devMetadata{
		ID:        id,
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
		TextBody:  msg.TextBody,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, base+".json"), data, 0644); err != nil {
		return "", fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
	}

	m.logger.Info("email saved to disk",
		"to", msg.To,
		"subject", msg.Subject,
		"path", htmlPath,
	)

	return id, nil
}

// sanitizeRegex matches characters that are unsafe in filenames.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject or tag into a safe lowercase filename
// fragment, truncated to a filesystem-friendly length.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}

// Compile-time interface check
var _ Mailer = (*DevMailer)(nil)
