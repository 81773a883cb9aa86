package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer manages template parsing and rendering with isolated template sets.
//
// Templates are organized as:
//   - layouts/public.html - the base layout every page extends
//   - components/*.html - reusable fragments (nav, footer, service card)
//   - partials/*.html - standalone fragments rendered without the layout
//   - pages/public/*.html - the site's pages
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
	isDev     bool
	mu        sync.RWMutex

	// For dev mode hot-reload
	templatesDir string
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	TemplatesDir string
	Logger       *slog.Logger
	IsDev        bool
}

// NewRenderer creates a new template renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	r := &Renderer{
		templates:    make(map[string]*template.Template),
		logger:       cfg.Logger,
		isDev:        cfg.IsDev,
		templatesDir: cfg.TemplatesDir,
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) loadTemplates() error {
	templatesDir := r.templatesDir

	componentFiles, err := filepath.Glob(filepath.Join(templatesDir, "components", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob components: %w", err)
	}

	partialFiles, err := filepath.Glob(filepath.Join(templatesDir, "partials", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob partials: %w", err)
	}

	// Parse each partial as a standalone template
	for _, partial := range partialFiles {
		partialTmpl, err := template.New("").Funcs(TemplateFuncs()).ParseFiles(partial)
		if err != nil {
			return fmt.Errorf("failed to parse partial %s: %w", partial, err)
		}

		partialName := filepath.Base(partial)
		partialName = strings.TrimSuffix(partialName, filepath.Ext(partialName))
		r.templates["partial/"+partialName] = partialTmpl
	}

	// Parse the public layout
	layoutPath := filepath.Join(templatesDir, "layouts", "public.html")
	baseTmpl, err := template.New("public").Funcs(TemplateFuncs()).ParseFiles(layoutPath)
	if err != nil {
		return fmt.Errorf("failed to parse public layout: %w", err)
	}

	if len(componentFiles) > 0 {
		baseTmpl, err = baseTmpl.ParseFiles(componentFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse components: %w", err)
		}
	}

	if len(partialFiles) > 0 {
		baseTmpl, err = baseTmpl.ParseFiles(partialFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse partials into layout: %w", err)
		}
	}

	// Parse pages, each cloned from the layout so defines don't collide
	pages, err := filepath.Glob(filepath.Join(templatesDir, "pages", "public", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob pages: %w", err)
	}

	for _, page := range pages {
		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone layout for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		// Store as "public/home", "public/contact", etc.
		pageName := filepath.Base(page)
		pageName = strings.TrimSuffix(pageName, filepath.Ext(pageName))
		r.templates["public/"+pageName] = pageTmpl
	}

	r.logger.Info("templates loaded", "count", len(r.templates))
	return nil
}

// Reload reloads all templates from disk. Useful for development.
func (r *Renderer) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*template.Template)
	return r.loadTemplates()
}

// Render renders a template to an io.Writer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	// In dev mode, reload templates on each request
	if r.isDev {
		if err := r.Reload(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, r.getBaseTemplateName(name), data)
}

// RenderHTTP renders a template directly to an http.ResponseWriter.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	r.RenderHTTPStatus(w, http.StatusOK, name, data)
}

// RenderHTTPStatus renders a template with an explicit status code. The page
// is rendered to a buffer first so template errors never produce a half
// written response.
func (r *Renderer) RenderHTTPStatus(w http.ResponseWriter, status int, name string, data interface{}) {
	if r.isDev {
		if err := r.Reload(); err != nil {
			r.logger.Error("template reload failed", "error", err)
			http.Error(w, "Template reload failed", http.StatusInternalServerError)
			return
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Error("template not found", "name", name)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, r.getBaseTemplateName(name), data); err != nil {
		r.logger.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Template execution failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RenderPartial renders a partial template without the layout.
// The partial file should contain {{define "name"}}...{{end}} where name matches the file name.
func (r *Renderer) RenderPartial(w http.ResponseWriter, name string, data interface{}) {
	fullName := "partial/" + name

	r.mu.RLock()
	tmpl, ok := r.templates[fullName]
	r.mu.RUnlock()

	if !ok {
		r.logger.Error("partial template not found", "name", name)
		http.Error(w, "Partial not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.logger.Error("partial execution failed", "name", name, "error", err)
	}
}

// getBaseTemplateName determines which base template to execute.
func (r *Renderer) getBaseTemplateName(name string) string {
	if strings.HasPrefix(name, "partial/") {
		return filepath.Base(name) + ".html"
	}
	return "public"
}

// ListTemplates returns a list of all loaded template names.
// Useful for debugging.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
