// Package domain contains the core types and business rules for the MediWeb
// website.
//
// This file defines the contact form submission and its validation rules.
// The rules here are the single authoritative definition: the server-side
// handler applies them on every POST, and the progressive-enhancement script
// in web/static/js/contact-form.js mirrors them for inline feedback. If a
// rule changes here, the script must be updated to match.
package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// =============================================================================
// Service Identifiers
// =============================================================================

// Service identifiers accepted by the contact form. These are the canonical
// short codes for MediWeb's lines of business; they double as lookup keys
// for display labels in email templates.
const (
	ServiceWebDevelopment  = "web-development"
	ServiceMedicalServices = "medical-services"
	ServiceCourses         = "courses"
	ServiceOther           = "other"
)

// serviceLabels maps service identifiers to human-readable display names.
var serviceLabels = map[string]string{
	ServiceWebDevelopment:  "Web Development",
	ServiceMedicalServices: "Medical Services",
	ServiceCourses:         "Courses & Training",
	ServiceOther:           "Other",
}

// ServiceLabel returns the display name for a service identifier.
// Unknown identifiers pass through unchanged so a stale form value never
// breaks email rendering.
func ServiceLabel(id string) string {
	if label, ok := serviceLabels[id]; ok {
		return label
	}
	return id
}

// ServiceLabels maps a slice of identifiers to display names, preserving order.
func ServiceLabels(ids []string) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, ServiceLabel(id))
	}
	return labels
}

// =============================================================================
// Contact Submission
// =============================================================================

// Validation limits for contact form fields.
const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in the
// domain. Real verification happens when the confirmation email is delivered.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission holds one contact form submission. Instances are
// ephemeral: constructed from posted form values, validated, turned into
// email payloads, and discarded with the request. Nothing is persisted.
type ContactSubmission struct {
	Name     string
	Email    string
	Services []string
	Message  string
}

// ParseContactForm builds a ContactSubmission from raw posted form values.
// Absent fields are treated as empty, surrounding whitespace is trimmed, and
// blank service selections are dropped. Parsing never fails; validation is a
// separate step so every problem can be reported at once.
func ParseContactForm(values url.Values) ContactSubmission {
	sub := ContactSubmission{
		Name:    strings.TrimSpace(values.Get("name")),
		Email:   strings.TrimSpace(values.Get("email")),
		Message: strings.TrimSpace(values.Get("message")),
	}
	raw := values["services"]
	if len(raw) == 0 {
		// Older markup posted a single "service" field; accept it so
		// cached pages keep working across a deploy.
		raw = values["service"]
	}
	for _, svc := range raw {
		svc = strings.TrimSpace(svc)
		if svc != "" {
			sub.Services = append(sub.Services, svc)
		}
	}
	return sub
}

// =============================================================================
// Validation Rules
// =============================================================================

// FieldReason identifies why a field failed validation. Reasons are
// language-independent; internal/i18n turns them into user-facing messages.
type FieldReason string

const (
	ReasonRequired      FieldReason = "required"
	ReasonTooShort      FieldReason = "too_short"
	ReasonInvalidFormat FieldReason = "invalid_format"
)

// Validate applies the contact form rules to every field independently and
// returns a map from field name to the first failing reason for that field.
// An empty map means the submission is valid. Validation never short-circuits
// across fields, so the caller can report all problems in one response.
func (s ContactSubmission) Validate() map[string]FieldReason {
	errs := make(map[string]FieldReason)

	name := strings.TrimSpace(s.Name)
	if name == "" {
		errs["name"] = ReasonRequired
	} else if len([]rune(name)) < MinNameLength {
		errs["name"] = ReasonTooShort
	}

	email := strings.TrimSpace(s.Email)
	if email == "" {
		errs["email"] = ReasonRequired
	} else if !emailPattern.MatchString(email) {
		errs["email"] = ReasonInvalidFormat
	}

	if len(s.Services) == 0 {
		errs["services"] = ReasonRequired
	}

	message := strings.TrimSpace(s.Message)
	if message == "" {
		errs["message"] = ReasonRequired
	} else if len([]rune(message)) < MinMessageLength {
		errs["message"] = ReasonTooShort
	}

	return errs
}

// FormValues returns the submission as a field map for re-rendering the form
// with the user's input preserved after a failed submission.
func (s ContactSubmission) FormValues() map[string]string {
	return map[string]string{
		"name":    s.Name,
		"email":   s.Email,
		"message": s.Message,
	}
}

// HasService reports whether the given identifier was selected. Used by the
// contact page template to re-check boxes after a validation failure.
func (s ContactSubmission) HasService(id string) bool {
	for _, svc := range s.Services {
		if svc == id {
			return true
		}
	}
	return false
}
