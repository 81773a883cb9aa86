// Package handler contains HTTP handlers for the MediWeb website.
//
// This file implements the contact form: rendering it, validating posted
// submissions and dispatching the two transactional emails.
package handler

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mediweb/website/internal/domain"
	"github.com/mediweb/website/internal/email"
	"github.com/mediweb/website/internal/i18n"
	"github.com/mediweb/website/internal/metrics"
	"github.com/mediweb/website/internal/webutil"
)

// User-facing messages for the submission outcome. The failure message is
// deliberately generic; provider details go to the log only.
const (
	contactSuccessMessage = "Thank you for your message! We'll get back to you within one business day."
	contactFailureMessage = "We couldn't send your message right now. Please try again or contact us directly at post@mediweb.no."
)

// Submission outcomes for the contact metrics counter.
const (
	submissionAccepted = "accepted"
	submissionInvalid  = "invalid"
	submissionFailed   = "failed"
)

// =============================================================================
// Handler Configuration
// =============================================================================

// ContactSender dispatches the two emails produced by a valid submission.
// Satisfied by *email.ContactMailer; an interface so tests can record calls.
type ContactSender interface {
	SendNotification(ctx context.Context, sub domain.ContactSubmission) error
	SendConfirmation(ctx context.Context, sub domain.ContactSubmission) error
}

var _ ContactSender = (*email.ContactMailer)(nil)

// ContactHandler handles the contact form.
//
// Routes handled:
// - GET  /contact -> Show
// - POST /contact -> Submit
type ContactHandler struct {
	sender   ContactSender
	renderer TemplateRenderer
	logger   *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(sender ContactSender, renderer TemplateRenderer, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		sender:   sender,
		renderer: renderer,
		logger:   logger,
	}
}

// RegisterRoutes registers the contact routes with the provided mux.
func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /contact", h.Show)
	mux.HandleFunc("POST /contact", h.Submit)
}

// =============================================================================
// Template Data Types
// =============================================================================

// ContactPageData contains data for the contact page.
type ContactPageData struct {
	CurrentPath    string
	Title          string
	Description    string
	Theme          string
	StructuredData template.HTML
	Form           map[string]string        // field values for re-populating on error
	Submission     domain.ContactSubmission // for re-checking service boxes
	Errors         map[string]string        // field-level validation errors
	Flash          *Flash
	Services       []domain.Service // checkbox options
	Success        bool
}

// =============================================================================
// GET /contact - Show Form
// =============================================================================

// Show renders an empty contact form.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	webutil.SetCacheHeaders(w, webutil.AssetHTML)
	h.renderer.RenderHTTP(w, "public/contact", ContactPageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "Contact - MediWeb Solutions",
		Description: "Tell us about your project and we'll get back to you within one business day.",
		Form:        map[string]string{},
		Services:    domain.Services,
	})
}

// =============================================================================
// POST /contact - Submit
// =============================================================================

// Submit validates a posted submission and, when valid, sends the business
// notification followed by the customer confirmation. Either send failing
// fails the whole submission; nothing is retried or deduplicated, so a user
// retry after a partial failure may deliver a duplicate notification.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("contact form parse failed", "error", err)
		metrics.ContactSubmissionsTotal.WithLabelValues(submissionFailed).Inc()
		h.respondFailure(w, r, domain.ContactSubmission{})
		return
	}

	sub := domain.ParseContactForm(r.PostForm)

	if errs := sub.Validate(); len(errs) > 0 {
		tag := i18n.Match(r.Header.Get("Accept-Language"))
		localized := i18n.Localize(tag, errs)

		h.logger.Info("contact validation failed",
			"field_count", len(errs),
			"lang", tag.String(),
		)
		metrics.ContactSubmissionsTotal.WithLabelValues(submissionInvalid).Inc()
		h.respondInvalid(w, r, sub, localized)
		return
	}

	// Business notification first, then customer confirmation. Both are
	// always attempted: delivery isn't transactional across the two
	// messages, so the policy is attempt both and fail the submission if
	// either send failed.
	notifyErr := h.sender.SendNotification(r.Context(), sub)
	recordEmail("notification", notifyErr)

	confirmErr := h.sender.SendConfirmation(r.Context(), sub)
	recordEmail("confirmation", confirmErr)

	if notifyErr != nil || confirmErr != nil {
		h.logger.Error("contact email dispatch failed",
			"notification_error", errString(notifyErr),
			"confirmation_error", errString(confirmErr),
		)
		metrics.ContactSubmissionsTotal.WithLabelValues(submissionFailed).Inc()
		h.respondFailure(w, r, sub)
		return
	}

	h.logger.Info("contact submission accepted",
		"services", sub.Services,
	)
	metrics.ContactSubmissionsTotal.WithLabelValues(submissionAccepted).Inc()
	h.respondSuccess(w, r)
}

// =============================================================================
// Responses
// =============================================================================

func (h *ContactHandler) respondInvalid(w http.ResponseWriter, r *http.Request, sub domain.ContactSubmission, errs map[string]string) {
	if acceptsJSON(r) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": errs,
			"data":   submittedValues(sub),
		})
		return
	}

	h.renderer.RenderHTTPStatus(w, http.StatusBadRequest, "public/contact", ContactPageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "Contact - MediWeb Solutions",
		Form:        sub.FormValues(),
		Submission:  sub,
		Errors:      errs,
		Services:    domain.Services,
	})
}

func (h *ContactHandler) respondFailure(w http.ResponseWriter, r *http.Request, sub domain.ContactSubmission) {
	if acceptsJSON(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": contactFailureMessage,
			"data":  submittedValues(sub),
		})
		return
	}

	h.renderer.RenderHTTPStatus(w, http.StatusInternalServerError, "public/contact", ContactPageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "Contact - MediWeb Solutions",
		Form:        sub.FormValues(),
		Submission:  sub,
		Flash:       &Flash{Type: "error", Message: contactFailureMessage},
		Services:    domain.Services,
	})
}

func (h *ContactHandler) respondSuccess(w http.ResponseWriter, r *http.Request) {
	if acceptsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": contactSuccessMessage,
		})
		return
	}

	// Fresh form with a success flash; submitted values are not preserved.
	h.renderer.RenderHTTP(w, "public/contact", ContactPageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "Contact - MediWeb Solutions",
		Form:        map[string]string{},
		Flash:       &Flash{Type: "success", Message: contactSuccessMessage},
		Services:    domain.Services,
		Success:     true,
	})
}

// recordEmail increments the per-kind email counter for one send attempt.
func recordEmail(kind string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	metrics.EmailsSentTotal.WithLabelValues(kind, status).Inc()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// submittedValues is the echo of the user's input returned with error
// responses so a client can re-populate its form.
func submittedValues(sub domain.ContactSubmission) map[string]interface{} {
	return map[string]interface{}{
		"name":     sub.Name,
		"email":    sub.Email,
		"services": sub.Services,
		"message":  sub.Message,
	}
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	webutil.SetCacheHeaders(w, webutil.AssetAPI)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
