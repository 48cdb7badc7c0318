package model

import (
	"time"
)

// Status is the single lifecycle field on a candidate/employee record.
// It only ever moves forward through the pipeline; there is no transition
// back to an earlier phase.
type Status string

const (
	StatusCandidate Status = "candidate"
	StatusInterview Status = "interview"
	StatusNewHire   Status = "new-hire"
	StatusEmployee  Status = "employee"
	StatusInactive  Status = "inactive"
)

// next maps each status to the only status it may advance to.
var next = map[Status]Status{
	StatusCandidate: StatusInterview,
	StatusInterview: StatusNewHire,
	StatusNewHire:   StatusEmployee,
	StatusEmployee:  StatusInactive,
}

// Valid reports whether s is one of the five defined pipeline values.
func (s Status) Valid() bool {
	switch s {
	case StatusCandidate, StatusInterview, StatusNewHire, StatusEmployee, StatusInactive:
		return true
	}
	return false
}

// CanAdvanceTo reports whether the single defined forward transition from s
// is to target.
func (s Status) CanAdvanceTo(target Status) bool {
	return next[s] == target
}

// Rejectable reports whether a record in this status may be rejected
// (hard-deleted). Once someone is hired they can only be deactivated,
// never rejected.
func (s Status) Rejectable() bool {
	return s == StatusCandidate || s == StatusInterview
}

// DocumentFile is one uploaded attachment on a candidate record. ID doubles
// as the blob locator, matching how the upload flow generates entries.
type DocumentFile struct {
	ID    string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

// InterviewReview is written once while the candidate sits in the interview
// phase. Attaching a review does not itself advance the status.
type InterviewReview struct {
	Reviewer   string         `bson:"reviewer" json:"reviewer"`
	Ratings    map[string]int `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Notes      string         `bson:"notes,omitempty" json:"notes,omitempty"`
	ReviewedAt time.Time      `bson:"reviewed_at" json:"reviewedAt"`
}

// InactiveInfo records why an employee was deactivated.
type InactiveInfo struct {
	Reason string    `bson:"reason" json:"reason"`
	Detail string    `bson:"detail,omitempty" json:"detail,omitempty"`
	At     time.Time `bson:"at" json:"at"`
}

// Candidate is a pipeline record in the candidates collection. The same
// document shape carries a person from application through employment; only
// Status tells the phases apart.
type Candidate struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	Status    Status    `bson:"status" json:"status"`

	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`

	// ApplyingFor holds onboarding process names in the order the applicant
	// picked them.
	ApplyingFor []string          `bson:"applying_for" json:"applyingFor"`
	Answers     map[string]string `bson:"answers,omitempty" json:"answers,omitempty"`

	Resume                   string     `bson:"resume,omitempty" json:"resume,omitempty"`
	DriversLicense           string     `bson:"drivers_license,omitempty" json:"driversLicense,omitempty"`
	DriversLicenseExpiration *time.Time `bson:"drivers_license_expiration,omitempty" json:"driversLicenseExpiration,omitempty"`

	Documents     []DocumentFile `bson:"documents" json:"documents"`
	MiscDocuments []DocumentFile `bson:"misc_documents" json:"miscDocuments"`

	InterviewReview *InterviewReview `bson:"interview_review,omitempty" json:"interviewReview,omitempty"`
	InactiveInfo    *InactiveInfo    `bson:"inactive_info,omitempty" json:"inactiveInfo,omitempty"`
}

// HasDocument reports whether either attachment list already carries the
// given locator.
func (c *Candidate) HasDocument(url string) bool {
	for _, d := range c.Documents {
		if d.URL == url {
			return true
		}
	}
	for _, d := range c.MiscDocuments {
		if d.URL == url {
			return true
		}
	}
	return false
}

// RemoveDocument filters the locator out of both attachment lists and
// reports whether anything was removed.
func (c *Candidate) RemoveDocument(url string) bool {
	removed := false
	keep := func(in []DocumentFile) []DocumentFile {
		out := in[:0]
		for _, d := range in {
			if d.URL == url {
				removed = true
				continue
			}
			out = append(out, d)
		}
		return out
	}
	c.Documents = keep(c.Documents)
	c.MiscDocuments = keep(c.MiscDocuments)
	return removed
}
