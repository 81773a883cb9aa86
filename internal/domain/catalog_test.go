package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceBySlug(t *testing.T) {
	svc, ok := ServiceBySlug("web-development")
	assert.True(t, ok)
	assert.Equal(t, ServiceWebDevelopment, svc.ID)
	assert.Equal(t, "Web Development", svc.Title)

	_, ok = ServiceBySlug("nonexistent")
	assert.False(t, ok)
}

func TestCatalog_IdentifiersMatchContactForm(t *testing.T) {
	// Every catalog entry must be selectable on the contact form, so its ID
	// must resolve to a display label rather than falling through raw.
	for _, svc := range Services {
		assert.NotEqual(t, svc.ID, "", "catalog entry %q has empty ID", svc.Title)
		assert.NotEmpty(t, svc.Slug)
		assert.NotEmpty(t, svc.Features, "service %q has no features", svc.Title)
		assert.Contains(t, serviceLabels, svc.ID)
	}
}
