package handler

import (
	"log/slog"
	"net/http"

	"github.com/mediweb/website/internal/domain"
)

// Theme cookie settings. The cookie is read server-side and rendered into
// the root element, so pages arrive with the right theme class already set.
const (
	themeCookieName   = "theme"
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// validThemes are the accepted theme values. "system" clears the override
// and falls back to prefers-color-scheme.
var validThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// ThemeHandler persists the visitor's light/dark preference in a cookie so
// server-rendered pages come back with the right theme class.
//
// Routes handled:
// - POST /theme -> Set
type ThemeHandler struct {
	logger   *slog.Logger
	isSecure bool
}

// NewThemeHandler creates a new ThemeHandler. Set isSecure in production to
// mark the cookie Secure.
func NewThemeHandler(logger *slog.Logger, isSecure bool) *ThemeHandler {
	return &ThemeHandler{logger: logger, isSecure: isSecure}
}

// RegisterRoutes registers the theme route with the provided mux.
func (h *ThemeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /theme", h.Set)
}

// Set stores the posted theme preference. Unknown values are rejected with
// a 400; "system" deletes the cookie instead of storing it.
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid("theme.set", "invalid form"))
		return
	}

	theme := r.PostForm.Get("theme")
	if !validThemes[theme] {
		ErrorResponse(w, r, h.logger, domain.Invalid("theme.set", "invalid theme"))
		return
	}

	cookie := &http.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.isSecure,
		HttpOnly: true,
	}
	if theme == "system" {
		cookie.Value = ""
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)

	// The enhancement script posts via fetch and only needs the cookie;
	// plain form posts get bounced back to where they came from.
	if acceptsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ref := r.Referer()
	if ref == "" {
		ref = "/"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

// ThemeFromRequest returns the visitor's stored theme, or "system" when no
// valid preference cookie is present. Layout templates use it to set the
// root element class.
func ThemeFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(themeCookieName)
	if err != nil || !validThemes[cookie.Value] {
		return "system"
	}
	return cookie.Value
}
