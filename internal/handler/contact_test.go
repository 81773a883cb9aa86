package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mediweb/website/internal/domain"
)

// =============================================================================
// Test Fakes
// =============================================================================

// fakeRenderer records what was rendered and writes the template name as the
// response body.
type fakeRenderer struct {
	name   string
	status int
	data   interface{}
}

func (f *fakeRenderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	f.RenderHTTPStatus(w, http.StatusOK, name, data)
}

func (f *fakeRenderer) RenderHTTPStatus(w http.ResponseWriter, status int, name string, data interface{}) {
	f.name = name
	f.status = status
	f.data = data
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(name))
}

// fakeSender records send calls in order and returns the configured errors.
type fakeSender struct {
	calls      []string
	notifyErr  error
	confirmErr error
}

func (f *fakeSender) SendNotification(ctx context.Context, sub domain.ContactSubmission) error {
	f.calls = append(f.calls, "notification")
	return f.notifyErr
}

func (f *fakeSender) SendConfirmation(ctx context.Context, sub domain.ContactSubmission) error {
	f.calls = append(f.calls, "confirmation")
	return f.confirmErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContactTest(sender *fakeSender) (*ContactHandler, *fakeRenderer) {
	renderer := &fakeRenderer{}
	return NewContactHandler(sender, renderer, testLogger()), renderer
}

// validForm returns form values that pass every validation rule.
func validForm() url.Values {
	return url.Values{
		"name":     {"Kari Nordmann"},
		"email":    {"kari@example.com"},
		"services": {"web-development"},
		"message":  {"I need a new website for my clinic."},
	}
}

// postForm submits URL-encoded form values, asking for JSON when json is true.
func postForm(h *ContactHandler, form url.Values, json bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if json {
		req.Header.Set("Accept", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

// =============================================================================
// GET /contact
// =============================================================================

func TestContactShow(t *testing.T) {
	h, renderer := newContactTest(&fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if renderer.name != "public/contact" {
		t.Errorf("rendered %q, want public/contact", renderer.name)
	}

	data, ok := renderer.data.(ContactPageData)
	if !ok {
		t.Fatalf("data type = %T", renderer.data)
	}
	if len(data.Services) == 0 {
		t.Error("contact page needs the service catalog for its checkboxes")
	}
}

// =============================================================================
// POST /contact - Validation
// =============================================================================

func TestContactSubmit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(url.Values)
		wantFields []string
	}{
		{
			name:       "empty submission reports every field",
			mutate:     func(f url.Values) { f.Del("name"); f.Del("email"); f.Del("services"); f.Del("message") },
			wantFields: []string{"name", "email", "services", "message"},
		},
		{
			name:       "short name",
			mutate:     func(f url.Values) { f.Set("name", "A") },
			wantFields: []string{"name"},
		},
		{
			name:       "malformed email only flags email",
			mutate:     func(f url.Values) { f.Set("email", "not-an-email") },
			wantFields: []string{"email"},
		},
		{
			name:       "nine character message is too short",
			mutate:     func(f url.Values) { f.Set("message", "123456789") },
			wantFields: []string{"message"},
		},
		{
			name:       "whitespace only message is required",
			mutate:     func(f url.Values) { f.Set("message", "   \n\t  ") },
			wantFields: []string{"message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			h, _ := newContactTest(sender)

			form := validForm()
			tt.mutate(form)
			rec := postForm(h, form, true)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if len(sender.calls) != 0 {
				t.Errorf("no emails may be sent for an invalid submission, got %v", sender.calls)
			}

			body := decodeBody(t, rec)
			errs, ok := body["errors"].(map[string]interface{})
			if !ok {
				t.Fatalf("missing errors object: %v", body)
			}
			if len(errs) != len(tt.wantFields) {
				t.Errorf("got %d errors %v, want fields %v", len(errs), errs, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("missing error for field %q", field)
				}
			}
			if _, ok := body["data"]; !ok {
				t.Error("error response must echo submitted values under data")
			}
		})
	}
}

func TestContactSubmit_TenCharacterMessagePasses(t *testing.T) {
	sender := &fakeSender{}
	h, _ := newContactTest(sender)

	form := validForm()
	form.Set("message", "1234567890")
	rec := postForm(h, form, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestContactSubmit_SingularServiceFieldAccepted(t *testing.T) {
	sender := &fakeSender{}
	h, _ := newContactTest(sender)

	form := validForm()
	form.Del("services")
	form.Set("service", "courses")
	rec := postForm(h, form, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestContactSubmit_LocalizedErrors(t *testing.T) {
	h, _ := newContactTest(&fakeSender{})

	form := validForm()
	form.Del("name")
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "nb-NO,nb;q=0.9")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	body := decodeBody(t, rec)
	errs := body["errors"].(map[string]interface{})
	if errs["name"] != "Navn er påkrevd" {
		t.Errorf("name error = %v, want Norwegian message", errs["name"])
	}
}

// =============================================================================
// POST /contact - Dispatch
// =============================================================================

func TestContactSubmit_Success(t *testing.T) {
	sender := &fakeSender{}
	h, _ := newContactTest(sender)

	rec := postForm(h, validForm(), true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Exactly two sends: notification first, confirmation second.
	want := []string{"notification", "confirmation"}
	if len(sender.calls) != 2 || sender.calls[0] != want[0] || sender.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", sender.calls, want)
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Error("success response needs a confirmation message")
	}
}

func TestContactSubmit_NotificationFailureFailsSubmission(t *testing.T) {
	sender := &fakeSender{notifyErr: errors.New("provider rejected")}
	h, _ := newContactTest(sender)

	rec := postForm(h, validForm(), true)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// The confirmation is still attempted; delivery isn't transactional.
	if len(sender.calls) != 2 {
		t.Errorf("calls = %v, want both sends attempted", sender.calls)
	}

	body := decodeBody(t, rec)
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("failure response needs a user-facing error message")
	}
	if _, ok := body["data"]; !ok {
		t.Error("failure response must echo submitted values under data")
	}
}

func TestContactSubmit_ConfirmationFailureFailsSubmission(t *testing.T) {
	sender := &fakeSender{confirmErr: errors.New("provider rejected")}
	h, _ := newContactTest(sender)

	rec := postForm(h, validForm(), true)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(sender.calls) != 2 {
		t.Errorf("calls = %v, want both sends attempted", sender.calls)
	}
}

func TestContactSubmit_ResubmissionIsIndependent(t *testing.T) {
	sender := &fakeSender{}
	h, _ := newContactTest(sender)

	first := postForm(h, validForm(), true)
	second := postForm(h, validForm(), true)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d, want both 200", first.Code, second.Code)
	}
	// No idempotency or dedup: the second submission sends again.
	if len(sender.calls) != 4 {
		t.Errorf("calls = %v, want 4 sends across two submissions", sender.calls)
	}
}

// =============================================================================
// POST /contact - HTML Responses
// =============================================================================

func TestContactSubmit_HTMLErrorPreservesInput(t *testing.T) {
	h, renderer := newContactTest(&fakeSender{})

	form := validForm()
	form.Set("email", "not-an-email")
	rec := postForm(h, form, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if renderer.name != "public/contact" {
		t.Errorf("rendered %q, want public/contact", renderer.name)
	}

	data, ok := renderer.data.(ContactPageData)
	if !ok {
		t.Fatalf("data type = %T", renderer.data)
	}
	if data.Form["name"] != "Kari Nordmann" {
		t.Errorf("name not preserved: %v", data.Form)
	}
	if _, ok := data.Errors["email"]; !ok {
		t.Errorf("missing email error: %v", data.Errors)
	}
	if !data.Submission.HasService("web-development") {
		t.Error("service selection not preserved for re-rendering")
	}
}

func TestContactSubmit_HTMLSuccessShowsFlash(t *testing.T) {
	h, renderer := newContactTest(&fakeSender{})

	rec := postForm(h, validForm(), false)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := renderer.data.(ContactPageData)
	if data.Flash == nil || data.Flash.Type != "success" {
		t.Errorf("flash = %+v, want success flash", data.Flash)
	}
	// Submitted values are not preserved after success.
	if data.Form["name"] != "" {
		t.Errorf("form should be cleared after success, got %v", data.Form)
	}
}
