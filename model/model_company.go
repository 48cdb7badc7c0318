package model

import (
	"errors"
	"time"
)

// FormKind discriminates the template/custom variants on the application
// form and interview screen of an onboarding process.
type FormKind string

const (
	FormTemplate FormKind = "template"
	FormCustom   FormKind = "custom"
)

// FormField is one field definition in a generated application form.
type FormField struct {
	ID       string   `bson:"id" json:"id"`
	Label    string   `bson:"label" json:"label"`
	Type     string   `bson:"type" json:"type"`
	Required bool     `bson:"required" json:"required"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
}

// ApplicationForm configures the first phase of an onboarding process.
// Kind selects the variant: template uses the built-in form and carries no
// payload; custom carries EITHER uploaded page images OR generated field
// definitions. The two custom payloads are mutually exclusive.
type ApplicationForm struct {
	ID     string      `bson:"id" json:"id"`
	Name   string      `bson:"name" json:"name"`
	Kind   FormKind    `bson:"kind" json:"kind"`
	Images []string    `bson:"images,omitempty" json:"images,omitempty"`
	Fields []FormField `bson:"fields,omitempty" json:"fields,omitempty"`
}

// TemplateApplicationForm returns the built-in default form variant.
func TemplateApplicationForm(id, name string) ApplicationForm {
	return ApplicationForm{ID: id, Name: name, Kind: FormTemplate}
}

// CustomImageForm returns a custom form backed by uploaded page images.
func CustomImageForm(id, name string, images []string) ApplicationForm {
	return ApplicationForm{ID: id, Name: name, Kind: FormCustom, Images: images}
}

// CustomFieldForm returns a custom form backed by generated field
// definitions.
func CustomFieldForm(id, name string, fields []FormField) ApplicationForm {
	return ApplicationForm{ID: id, Name: name, Kind: FormCustom, Fields: fields}
}

// Validate rejects documents that drifted out of the variant rules, e.g. a
// template form carrying a payload or a custom form carrying both.
func (f ApplicationForm) Validate() error {
	switch f.Kind {
	case FormTemplate:
		if len(f.Images) > 0 || len(f.Fields) > 0 {
			return errors.New("template application form must not carry a custom payload")
		}
	case FormCustom:
		if len(f.Images) > 0 && len(f.Fields) > 0 {
			return errors.New("custom application form cannot carry both images and fields")
		}
	default:
		return errors.New("unknown application form kind: " + string(f.Kind))
	}
	return nil
}

// InterviewScreen configures the interview phase: the built-in screen or a
// custom background image.
type InterviewScreen struct {
	Kind     FormKind `bson:"kind" json:"kind"`
	ImageURL string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

func TemplateInterviewScreen() InterviewScreen {
	return InterviewScreen{Kind: FormTemplate}
}

func CustomInterviewScreen(imageURL string) InterviewScreen {
	return InterviewScreen{Kind: FormCustom, ImageURL: imageURL}
}

func (s InterviewScreen) Validate() error {
	switch s.Kind {
	case FormTemplate:
		if s.ImageURL != "" {
			return errors.New("template interview screen must not carry an image")
		}
	case FormCustom:
		if s.ImageURL == "" {
			return errors.New("custom interview screen requires an image locator")
		}
	default:
		return errors.New("unknown interview screen kind: " + string(s.Kind))
	}
	return nil
}

// RequiredDoc is one document the new hire must provide, drawn from the
// standard set or custom-added per process.
type RequiredDoc struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Type  string `bson:"type" json:"type"`
}

// OnboardingProcess bundles the three configurable phases for one job role.
// Processes live embedded in their company document and are never referenced
// by id from outside it.
type OnboardingProcess struct {
	ID              string          `bson:"id" json:"id"`
	Name            string          `bson:"name" json:"name"`
	ApplicationForm ApplicationForm `bson:"application_form" json:"applicationForm"`
	InterviewScreen InterviewScreen `bson:"interview_screen" json:"interviewScreen"`
	RequiredDocs    []RequiredDoc   `bson:"required_docs" json:"requiredDocs"`
}

// AddRequiredDoc appends doc unless a doc with the same id is already
// present.
func (p *OnboardingProcess) AddRequiredDoc(doc RequiredDoc) {
	for _, d := range p.RequiredDocs {
		if d.ID == doc.ID {
			return
		}
	}
	p.RequiredDocs = append(p.RequiredDocs, doc)
}

// RemoveRequiredDoc filters the doc out. Removing an absent id is a no-op.
func (p *OnboardingProcess) RemoveRequiredDoc(docID string) {
	out := p.RequiredDocs[:0]
	for _, d := range p.RequiredDocs {
		if d.ID != docID {
			out = append(out, d)
		}
	}
	p.RequiredDocs = out
}

// Company is a tenant document in the companies collection.
type Company struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Fax     string `bson:"fax,omitempty" json:"fax,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	LogoURL string `bson:"logo_url,omitempty" json:"logoUrl,omitempty"`

	OnboardingProcesses []OnboardingProcess `bson:"onboarding_processes" json:"onboardingProcesses"`
}

// Process returns a pointer into the embedded process list, or nil when the
// id is absent.
func (c *Company) Process(processID string) *OnboardingProcess {
	for i := range c.OnboardingProcesses {
		if c.OnboardingProcesses[i].ID == processID {
			return &c.OnboardingProcesses[i]
		}
	}
	return nil
}
