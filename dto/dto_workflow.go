package dto

import "onboard_panel/model"

// AddProcessDTO names a new onboarding process; the name may be blank for
// the numbered default.
type AddProcessDTO struct {
	Name string `json:"name"`
}

// GeneratedProcessDTO embeds model-generated field definitions as a new
// process.
type GeneratedProcessDTO struct {
	Name   string            `json:"name"`
	Fields []model.FormField `json:"fields"`
}

// SetApplicationFormDTO swaps the form variant on a process. Kind is
// "template" or "custom"; for custom, set either images or fields.
type SetApplicationFormDTO struct {
	Kind   model.FormKind    `json:"kind"`
	Images []string          `json:"images"`
	Fields []model.FormField `json:"fields"`
}

// SetInterviewScreenDTO swaps the interview screen variant.
type SetInterviewScreenDTO struct {
	Kind     model.FormKind `json:"kind"`
	ImageURL string         `json:"imageUrl"`
}

// RequiredDocDTO adds one required document to a process.
type RequiredDocDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}
