// Package i18n localizes user-facing validation messages.
//
// The validation rules themselves live in internal/domain and are
// language-independent; this package only turns (field, reason) pairs into
// text. English is the default, Norwegian Bokmål is offered because most of
// MediWeb's visitors are Norwegian.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/mediweb/website/internal/domain"
)

// NorwegianBokmal is the "nb" tag; the language package only predeclares the
// "no" macrolanguage.
var NorwegianBokmal = language.MustParse("nb")

var supported = []language.Tag{
	language.English, // default
	NorwegianBokmal,
}

var matcher = language.NewMatcher(supported)

// Match picks the best supported language for an Accept-Language header
// value. An empty or unparseable header falls back to English.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	tag, _, _ := matcher.Match(tags...)
	// The matcher can return extended variants (e.g. en-US); collapse to the
	// supported base so catalog lookup stays exact.
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}

type messageKey struct {
	field  string
	reason domain.FieldReason
}

var englishMessages = map[messageKey]string{
	{"name", domain.ReasonRequired}:       "Name is required",
	{"name", domain.ReasonTooShort}:       fmt.Sprintf("Name must be at least %d characters", domain.MinNameLength),
	{"email", domain.ReasonRequired}:      "Email is required",
	{"email", domain.ReasonInvalidFormat}: "Please enter a valid email address",
	{"services", domain.ReasonRequired}:   "Please select at least one service",
	{"message", domain.ReasonRequired}:    "Message is required",
	{"message", domain.ReasonTooShort}:    fmt.Sprintf("Message must be at least %d characters", domain.MinMessageLength),
}

var bokmalMessages = map[messageKey]string{
	{"name", domain.ReasonRequired}:       "Navn er påkrevd",
	{"name", domain.ReasonTooShort}:       fmt.Sprintf("Navnet må være minst %d tegn", domain.MinNameLength),
	{"email", domain.ReasonRequired}:      "E-post er påkrevd",
	{"email", domain.ReasonInvalidFormat}: "Vennligst oppgi en gyldig e-postadresse",
	{"services", domain.ReasonRequired}:   "Vennligst velg minst én tjeneste",
	{"message", domain.ReasonRequired}:    "Melding er påkrevd",
	{"message", domain.ReasonTooShort}:    fmt.Sprintf("Meldingen må være minst %d tegn", domain.MinMessageLength),
}

// FieldMessage returns the localized message for one failed field.
// Unknown (field, reason) pairs get a generic fallback rather than an error;
// a missing translation should never take down a form response.
func FieldMessage(tag language.Tag, field string, reason domain.FieldReason) string {
	catalog := englishMessages
	if tag == NorwegianBokmal {
		catalog = bokmalMessages
	}
	if msg, ok := catalog[messageKey{field, reason}]; ok {
		return msg
	}
	if msg, ok := englishMessages[messageKey{field, reason}]; ok {
		return msg
	}
	return "This field is invalid"
}

// Localize converts a validation result from internal/domain into the
// field→message map returned to clients.
func Localize(tag language.Tag, errs map[string]domain.FieldReason) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, reason := range errs {
		out[field] = FieldMessage(tag, field, reason)
	}
	return out
}
