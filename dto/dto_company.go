package dto

import "onboard_panel/model"

// CompanyDTO is a partial company profile; empty fields are preserved on
// merge-save.
type CompanyDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
}

// CompanyResponse wraps a saved company in the uniform result shape.
type CompanyResponse struct {
	Success bool           `json:"success"`
	Company *model.Company `json:"company,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ActiveApplicationResponse tells the public application page what to
// render: the default template when the active company has no processes,
// otherwise the first process.
type ActiveApplicationResponse struct {
	CompanyName string                   `json:"companyName,omitempty"`
	LogoURL     string                   `json:"logoUrl,omitempty"`
	Default     bool                     `json:"default"`
	Process     *model.OnboardingProcess `json:"process,omitempty"`
}
