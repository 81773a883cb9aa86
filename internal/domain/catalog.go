package domain

// This file holds the static service catalog rendered on the services pages.
// The catalog is fixed content, not data: the site has no CMS or database,
// so editing an entry here and redeploying is the publishing workflow.

// Feature describes one capability highlighted on a service detail page.
type Feature struct {
	Title       string
	Description string
	Icon        string
}

// Service is one line of business presented on the website.
type Service struct {
	ID              string // canonical identifier, shared with the contact form
	Slug            string // URL path segment under /services/
	Title           string
	Description     string // one-liner for cards and meta tags
	LongDescription string // lead paragraph on the detail page
	Icon            string
	Features        []Feature
	CTAText         string
}

// Services is the catalog in display order.
var Services = []Service{
	{
		ID:              ServiceWebDevelopment,
		Slug:            "web-development",
		Title:           "Web Development",
		Description:     "Responsive websites and web applications built with modern technology.",
		LongDescription: "We build websites that look good, work on every device, and load fast. We work with modern frameworks and responsive design, and the result is a website that grows with you or your business.",
		Icon:            "code",
		CTAText:         "Start Your Project",
		Features: []Feature{
			{Title: "Responsive Design", Description: "Built to work on mobile and desktop alike.", Icon: "mobile"},
			{Title: "Modern Frameworks", Description: "Current, well-supported tooling for reliable long-term function.", Icon: "layers"},
			{Title: "SEO Optimization", Description: "Search engine optimization from the ground up for better visibility.", Icon: "search"},
			{Title: "Performance", Description: "Fast load times and smooth interaction for the best user experience.", Icon: "zap"},
			{Title: "Accessibility", Description: "WCAG as a minimum baseline so the site works for every kind of user.", Icon: "accessibility"},
			{Title: "CMS Integration", Description: "Simple content editing through a headless CMS where it fits.", Icon: "edit"},
		},
	},
	{
		ID:              ServiceMedicalServices,
		Slug:            "medical-services",
		Title:           "Medical Services",
		Description:     "Professional physician services for a range of needs, from clinic anesthesia to event medics.",
		LongDescription: "We provide professional physician services covering a range of needs: anesthesia at your clinic, medics at large events, and other on-demand medical staffing.",
		Icon:            "heart",
		CTAText:         "Get in Touch",
		Features: []Feature{
			{Title: "Anesthesia Services", Description: "Anesthesia at your clinic for patients who need sedation.", Icon: "users"},
			{Title: "Event Medics", Description: "Medical coverage for festivals, sports and other large events.", Icon: "shield"},
			{Title: "Other Physician Services", Description: "Flexible staffing for needs that do not fit a standard package.", Icon: "plus"},
		},
	},
	{
		ID:              ServiceCourses,
		Slug:            "courses",
		Title:           "Courses & Training",
		Description:     "Online and in-person courses in first aid and CPR.",
		LongDescription: "We offer first aid and CPR courses for companies and organizations, online or on site, taught by practicing medical professionals.",
		Icon:            "book",
		CTAText:         "Book a Course",
		Features: []Feature{
			{Title: "First Aid", Description: "Practical first aid training adapted to your workplace.", Icon: "cross"},
			{Title: "CPR Certification", Description: "Hands-on CPR courses with certified instructors.", Icon: "activity"},
			{Title: "On-site or Online", Description: "We come to you, or deliver the course digitally.", Icon: "globe"},
		},
	},
}

// ServiceBySlug looks up a catalog entry by its URL slug.
// The second return value reports whether a match was found.
func ServiceBySlug(slug string) (Service, bool) {
	for _, svc := range Services {
		if svc.Slug == slug {
			return svc, true
		}
	}
	return Service{}, false
}
