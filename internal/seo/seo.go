// Package seo builds schema.org JSON-LD payloads for page heads.
package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/mediweb/website/internal/domain"
)

// SiteName is the organization name used across structured data.
const SiteName = "MediWeb Solutions"

// Builder produces JSON-LD documents rooted at the configured base URL.
type Builder struct {
	baseURL string
}

// NewBuilder creates a Builder. The base URL is trimmed of trailing slashes.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Breadcrumb is one entry in a breadcrumb trail.
type Breadcrumb struct {
	Name string
	URL  string
}

// Organization returns the site-wide organization document.
func (b *Builder) Organization() map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        SiteName,
		"url":         b.baseURL,
		"description": "Web development, medical services and courses from Verdal, Norway",
		"logo":        b.baseURL + "/static/images/logo.png",
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"email":             "post@mediweb.no",
			"contactType":       "customer service",
			"availableLanguage": []string{"English", "Norwegian"},
		},
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": "Verdal",
			"addressCountry":  "NO",
		},
		"knowsAbout": serviceTitles(),
	}
}

// Service returns the structured data document for one service page,
// listing its features as an offer catalog.
func (b *Builder) Service(svc domain.Service) map[string]any {
	offers := make([]map[string]any, 0, len(svc.Features))
	for i, f := range svc.Features {
		offers = append(offers, map[string]any{
			"@type":    "Offer",
			"position": i + 1,
			"itemOffered": map[string]any{
				"@type":       "Service",
				"name":        f.Title,
				"description": f.Description,
			},
		})
	}

	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Title,
		"description": svc.Description,
		"serviceType": svc.Title,
		"url":         fmt.Sprintf("%s/services/%s", b.baseURL, svc.Slug),
		"provider": map[string]any{
			"@type": "Organization",
			"name":  SiteName,
			"url":   b.baseURL,
		},
		"hasOfferCatalog": map[string]any{
			"@type":           "OfferCatalog",
			"name":            svc.Title + " Services",
			"itemListElement": offers,
		},
	}
}

// Breadcrumbs returns a BreadcrumbList for the given trail.
func (b *Builder) Breadcrumbs(trail []Breadcrumb) map[string]any {
	items := make([]map[string]any, 0, len(trail))
	for i, c := range trail {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     b.baseURL + c.URL,
		})
	}

	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// Website returns the site-wide WebSite document.
func (b *Builder) Website() map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        SiteName,
		"url":         b.baseURL,
		"description": "Web development, medical services and courses from Verdal, Norway",
	}
}

// Render marshals documents into script tags ready for template embedding,
// one tag per document.
func Render(docs ...map[string]any) (template.HTML, error) {
	var b strings.Builder
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to marshal structured data: %w", err)
		}
		fmt.Fprintf(&b, `<script type="application/ld+json">%s</script>`, data)
	}
	return template.HTML(b.String()), nil
}

func serviceTitles() []string {
	titles := make([]string, 0, len(domain.Services))
	for _, s := range domain.Services {
		titles = append(titles, s.Title)
	}
	return titles
}
