package models

import "github.com/google/uuid"

// PredictRequest is the JSON body of a prediction request.
type PredictRequest struct {
	Animal   string   `json:"animal"`
	Symptoms []string `json:"symptoms"`
}

// CatalogResponse lists the selectable animals and symptoms.
type CatalogResponse struct {
	Animals  []string `json:"animals"`
	Symptoms []string `json:"symptoms"`
}

// ProbabilitiesResponse holds the two class probabilities.
type ProbabilitiesResponse struct {
	NotDangerous float64 `json:"not_dangerous"`
	Dangerous    float64 `json:"dangerous"`
}

// AdviceResponse is one advisory block in API form.
type AdviceResponse struct {
	Symptom  string `json:"symptom"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

// PredictResponse contains the result of a prediction.
type PredictResponse struct {
	ID            uuid.UUID             `json:"id"`
	Animal        string                `json:"animal"`
	Symptoms      []string              `json:"symptoms"`
	Label         int                   `json:"label"`
	Dangerous     bool                  `json:"dangerous"`
	Result        string                `json:"result"`
	Probabilities ProbabilitiesResponse `json:"probabilities"`
	Advice        []AdviceResponse      `json:"advice"`
}

// NewAdviceResponse converts an AdviceBlock for the API.
func NewAdviceResponse(a AdviceBlock) AdviceResponse {
	return AdviceResponse{
		Symptom:  a.Symptom,
		Title:    a.Title,
		Text:     a.Text,
		Markdown: a.Markdown(),
	}
}
