package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mediweb/website/internal/seo"
)

func newPageTest() (*PageHandler, *fakeRenderer) {
	renderer := &fakeRenderer{}
	h := NewPageHandler(renderer, seo.NewBuilder("https://mediweb.no"), testLogger())
	return h, renderer
}

func TestPageHandler_Home(t *testing.T) {
	h, renderer := newPageTest()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if renderer.name != "public/home" {
		t.Errorf("rendered %q", renderer.name)
	}

	data := renderer.data.(PageData)
	if len(data.Services) == 0 {
		t.Error("home page needs the service catalog")
	}
	if !strings.Contains(string(data.StructuredData), "application/ld+json") {
		t.Error("home page should embed structured data")
	}
	if !strings.Contains(string(data.StructuredData), `"Organization"`) {
		t.Error("home page structured data should include the Organization document")
	}
	if !strings.Contains(string(data.StructuredData), `"WebSite"`) {
		t.Error("home page structured data should include the WebSite document")
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=300") {
		t.Errorf("html pages get a short cache, got %q", cc)
	}
}

func TestPageHandler_ServiceDetail(t *testing.T) {
	h, renderer := newPageTest()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/services/medical-services", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := renderer.data.(PageData)
	if data.Service == nil || data.Service.Slug != "medical-services" {
		t.Errorf("service = %+v", data.Service)
	}
}

func TestPageHandler_UnknownServiceIs404(t *testing.T) {
	h, renderer := newPageTest()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/services/3d-printing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if renderer.name != "public/404" {
		t.Errorf("rendered %q, want public/404", renderer.name)
	}
}

func TestPageHandler_UnmatchedPathIs404(t *testing.T) {
	h, _ := newPageTest()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestThemeHandler_Set(t *testing.T) {
	h := NewThemeHandler(testLogger(), false)

	form := "theme=dark"
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.Set(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "theme" || cookies[0].Value != "dark" {
		t.Fatalf("cookies = %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("theme cookie should be HttpOnly; only the server reads it")
	}
}

func TestPageHandler_Home_ReadsThemeCookie(t *testing.T) {
	h, renderer := newPageTest()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	if data := renderer.data.(PageData); data.Theme != "dark" {
		t.Errorf("theme = %q, want dark", data.Theme)
	}
}

func TestPageHandler_NotFoundJSON(t *testing.T) {
	h, _ := newPageTest()

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
}

func TestThemeHandler_RejectsUnknownTheme(t *testing.T) {
	h := NewThemeHandler(testLogger(), false)

	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader("theme=neon"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Set(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestThemeFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ThemeFromRequest(req); got != "system" {
		t.Errorf("no cookie should mean system, got %q", got)
	}

	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	if got := ThemeFromRequest(req); got != "dark" {
		t.Errorf("got %q, want dark", got)
	}
}
