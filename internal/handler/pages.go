// Package handler contains HTTP handlers for the MediWeb website.
//
// This file implements the static marketing pages: home, services, service
// detail and about.
package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mediweb/website/internal/domain"
	"github.com/mediweb/website/internal/seo"
	"github.com/mediweb/website/internal/webutil"
)

// =============================================================================
// Handler Configuration
// =============================================================================

// TemplateRenderer is the interface for rendering HTML templates.
// This interface allows for mocking in tests.
type TemplateRenderer interface {
	RenderHTTP(w http.ResponseWriter, name string, data interface{})
	RenderHTTPStatus(w http.ResponseWriter, status int, name string, data interface{})
}

// Flash represents a flash message to display to the user.
//
// The Type field determines styling in templates:
// - "success" -> green background
// - "error"   -> red background
// - "info"    -> blue background
type Flash struct {
	Type    string // "success", "error", or "info"
	Message string
}

// PageHandler serves the site's content pages.
//
// Routes handled:
// - GET /                 -> Home
// - GET /services         -> Services
// - GET /services/{slug}  -> ServiceDetail
// - GET /about            -> About
type PageHandler struct {
	renderer TemplateRenderer
	seo      *seo.Builder
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer TemplateRenderer, seoBuilder *seo.Builder, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		seo:      seoBuilder,
		logger:   logger,
	}
}

// RegisterRoutes registers all page routes with the provided mux.
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /services", h.Services)
	mux.HandleFunc("GET /services/{slug}", h.ServiceDetail)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /", h.NotFound)
}

// =============================================================================
// Template Data Types
// =============================================================================

// PageData contains the fields every content page shares.
type PageData struct {
	CurrentPath    string
	Title          string
	Description    string
	Theme          string // "light", "dark" or "system"
	Services       []domain.Service
	Service        *domain.Service
	Flash          *Flash
	StructuredData template.HTML
}

// =============================================================================
// Handlers
// =============================================================================

// Home renders the landing page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	structured, err := seo.Render(h.seo.Organization(), h.seo.Website())
	if err != nil {
		h.logger.Error("structured data render failed", "error", err)
	}

	webutil.SetCacheHeaders(w, webutil.AssetHTML)
	h.renderer.RenderHTTP(w, "public/home", PageData{
		CurrentPath:    r.URL.Path,
		Theme:          ThemeFromRequest(r),
		Title:          "MediWeb Solutions - Web Development, Medical Services & Courses",
		Description:    "Web development, medical services and courses from Verdal, Norway.",
		Services:       domain.Services,
		StructuredData: structured,
	})
}

// Services renders the service overview page.
func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	structured, err := seo.Render(h.seo.Breadcrumbs([]seo.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Services", URL: "/services"},
	}))
	if err != nil {
		h.logger.Error("structured data render failed", "error", err)
	}

	webutil.SetCacheHeaders(w, webutil.AssetHTML)
	h.renderer.RenderHTTP(w, "public/services", PageData{
		CurrentPath:    r.URL.Path,
		Theme:          ThemeFromRequest(r),
		Title:          "Services - MediWeb Solutions",
		Description:    "Everything we offer, from custom web applications to medical consulting and training.",
		Services:       domain.Services,
		StructuredData: structured,
	})
}

// ServiceDetail renders one service's page, 404ing on unknown slugs.
func (h *PageHandler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	svc, ok := domain.ServiceBySlug(slug)
	if !ok {
		h.NotFound(w, r)
		return
	}

	structured, err := seo.Render(h.seo.Service(svc))
	if err != nil {
		h.logger.Error("structured data render failed", "error", err)
	}

	webutil.SetCacheHeaders(w, webutil.AssetHTML)
	h.renderer.RenderHTTP(w, "public/service", PageData{
		CurrentPath:    r.URL.Path,
		Theme:          ThemeFromRequest(r),
		Title:          svc.Title + " - MediWeb Solutions",
		Description:    svc.Description,
		Service:        &svc,
		StructuredData: structured,
	})
}

// About renders the about page.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	webutil.SetCacheHeaders(w, webutil.AssetHTML)
	h.renderer.RenderHTTP(w, "public/about", PageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "About - MediWeb Solutions",
		Description: "Who we are and how we work.",
	})
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if acceptsJSON(r) {
		NotFoundResponse(w, r, h.logger)
		return
	}

	h.logger.Info("page not found", "path", r.URL.Path)
	h.renderer.RenderHTTPStatus(w, http.StatusNotFound, "public/404", PageData{
		CurrentPath: r.URL.Path,
		Theme:       ThemeFromRequest(r),
		Title:       "Page Not Found - MediWeb Solutions",
	})
}
