package handlers

import (
	"symptomcheck/internal/config"
	"symptomcheck/internal/models"
)

// Site is the branding shown on every page.
type Site struct {
	Title   string
	Tagline string
	Footer  string
}

// SlotView is one symptom select on the form.
type SlotView struct {
	Index int
	Value string
}

// Page is the view model for every template. Fields a view does not use stay
// at their zero value.
type Page struct {
	Site  Site
	Title string

	// Form
	Animals  []string
	Symptoms []string
	Animal   string
	Slots    []SlotView

	// Result area; at most one of Error, Failure and Prediction is set.
	Error      string
	Failure    string
	Prediction *models.Prediction
	Advice     []models.AdviceBlock

	// Error view
	Message string
}

// NewPage returns a page carrying the configured branding.
func NewPage(cfg *config.Config) Page {
	return Page{
		Site: Site{
			Title:   cfg.SiteTitle,
			Tagline: cfg.SiteTagline,
			Footer:  cfg.SiteFooter,
		},
	}
}

// ErrorPage returns the view model for the error template.
func ErrorPage(cfg *config.Config, message string) Page {
	p := NewPage(cfg)
	p.Title = "Error"
	p.Message = message
	return p
}
