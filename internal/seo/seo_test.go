package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mediweb/website/internal/domain"
)

func TestBuilder_Organization(t *testing.T) {
	b := NewBuilder("https://mediweb.no/")

	doc := b.Organization()
	if doc["@type"] != "Organization" {
		t.Errorf("@type = %v", doc["@type"])
	}
	// Trailing slash must be trimmed from derived URLs.
	if doc["url"] != "https://mediweb.no" {
		t.Errorf("url = %v", doc["url"])
	}
	if doc["logo"] != "https://mediweb.no/static/images/logo.png" {
		t.Errorf("logo = %v", doc["logo"])
	}
}

func TestBuilder_Service(t *testing.T) {
	b := NewBuilder("https://mediweb.no")

	svc, ok := domain.ServiceBySlug("web-development")
	if !ok {
		t.Fatal("web-development service missing from catalog")
	}

	doc := b.Service(svc)
	if doc["url"] != "https://mediweb.no/services/web-development" {
		t.Errorf("url = %v", doc["url"])
	}

	catalog, ok := doc["hasOfferCatalog"].(map[string]any)
	if !ok {
		t.Fatal("missing offer catalog")
	}
	offers, ok := catalog["itemListElement"].([]map[string]any)
	if !ok || len(offers) != len(svc.Features) {
		t.Fatalf("expected %d offers, got %v", len(svc.Features), catalog["itemListElement"])
	}
	if offers[0]["position"] != 1 {
		t.Errorf("offer positions should start at 1, got %v", offers[0]["position"])
	}
}

func TestBuilder_Breadcrumbs(t *testing.T) {
	b := NewBuilder("https://mediweb.no")

	doc := b.Breadcrumbs([]Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Services", URL: "/services"},
	})

	items := doc["itemListElement"].([]map[string]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1]["item"] != "https://mediweb.no/services" {
		t.Errorf("item url = %v", items[1]["item"])
	}
	if items[1]["position"] != 2 {
		t.Errorf("position = %v", items[1]["position"])
	}
}

func TestRender(t *testing.T) {
	b := NewBuilder("https://mediweb.no")

	html, err := Render(b.Website())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	s := string(html)
	if !strings.HasPrefix(s, `<script type="application/ld+json">`) {
		t.Errorf("missing script wrapper: %s", s)
	}

	// Payload between the tags must be valid JSON.
	payload := strings.TrimSuffix(strings.TrimPrefix(s, `<script type="application/ld+json">`), "</script>")
	var parsed map[string]any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if parsed["@context"] != "https://schema.org" {
		t.Errorf("@context = %v", parsed["@context"])
	}
}

func TestRender_MultipleDocuments(t *testing.T) {
	b := NewBuilder("https://mediweb.no")

	html, err := Render(b.Organization(), b.Website())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	s := string(html)
	if got := strings.Count(s, `<script type="application/ld+json">`); got != 2 {
		t.Errorf("expected 2 script tags, got %d: %s", got, s)
	}
	if !strings.Contains(s, `"Organization"`) || !strings.Contains(s, `"WebSite"`) {
		t.Errorf("both documents should be rendered: %s", s)
	}
}
