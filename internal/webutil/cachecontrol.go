// Package webutil contains small HTTP helpers shared by handlers and
// middleware: cache header policies for the asset types the site serves.
package webutil

import (
	"net/http"
	"path"
	"strings"
)

// AssetType classifies a response for cache header purposes.
type AssetType string

const (
	AssetStatic AssetType = "static" // hashed build artifacts
	AssetImage  AssetType = "image"
	AssetFont   AssetType = "font"
	AssetCSS    AssetType = "css"
	AssetJS     AssetType = "js"
	AssetHTML   AssetType = "html"
	AssetAPI    AssetType = "api"
)

// CacheControl returns the Cache-Control value for an asset type.
//
// Hashed assets, fonts, CSS and JS are immutable for a year. Images get a
// month with stale-while-revalidate so re-exported photos propagate without
// a deploy. HTML revalidates after five minutes. API responses are never
// cached.
func CacheControl(t AssetType) string {
	switch t {
	case AssetStatic, AssetFont, AssetCSS, AssetJS:
		return "public, max-age=31536000, immutable"
	case AssetImage:
		return "public, max-age=2592000, stale-while-revalidate=86400"
	case AssetHTML:
		return "public, max-age=300, must-revalidate"
	case AssetAPI:
		return "no-cache, no-store, must-revalidate"
	default:
		return "public, max-age=3600"
	}
}

// ClassifyPath maps a request path to an AssetType by extension.
func ClassifyPath(p string) AssetType {
	switch strings.ToLower(path.Ext(p)) {
	case ".css":
		return AssetCSS
	case ".js", ".mjs":
		return AssetJS
	case ".woff", ".woff2", ".ttf", ".otf", ".eot":
		return AssetFont
	case ".webp", ".avif", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico":
		return AssetImage
	case ".html", "":
		return AssetHTML
	default:
		return "default"
	}
}

// SetCacheHeaders writes the cache policy for an asset type onto a response.
// API responses also get Pragma: no-cache for aging proxies.
func SetCacheHeaders(w http.ResponseWriter, t AssetType) {
	w.Header().Set("Cache-Control", CacheControl(t))
	if t == AssetAPI {
		w.Header().Set("Pragma", "no-cache")
	}
}
