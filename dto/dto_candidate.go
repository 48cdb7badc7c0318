package dto

import "time"

// ApplicationDTO is the JSON part of a public application submission. File
// parts (resume, driversLicense) arrive as multipart siblings.
type ApplicationDTO struct {
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	ApplyingFor []string          `json:"applyingFor"`
	Answers     map[string]string `json:"answers"`
}

// DeactivateDTO carries the required reason for employee → inactive.
type DeactivateDTO struct {
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

// ReviewDTO is the interview review an admin submits.
type ReviewDTO struct {
	Reviewer string         `json:"reviewer"`
	Ratings  map[string]int `json:"ratings"`
	Notes    string         `json:"notes"`
}

// LicenseUpdateDTO rides along the license upload as a form field.
type LicenseUpdateDTO struct {
	Expiration time.Time `json:"expiration"`
}
