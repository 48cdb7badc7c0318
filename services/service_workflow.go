package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"onboard_panel/model"
)

// WorkflowService mutates the onboarding-process list embedded in a company
// document. Every mutation is a read-modify-write of the whole document;
// concurrent admin edits are last-write-wins (documented limitation, the
// expected usage is one admin per company).
type WorkflowService struct {
	companies CompanyStore
}

func NewWorkflowService(companies CompanyStore) *WorkflowService {
	return &WorkflowService{companies: companies}
}

func (s *WorkflowService) company(ctx context.Context, companyID string) (*model.Company, error) {
	c, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return nil, backendErr("get company", err)
	}
	if c == nil {
		return nil, &NotFoundError{Entity: "company", ID: companyID}
	}
	return c, nil
}

func (s *WorkflowService) save(ctx context.Context, c *model.Company) error {
	if err := s.companies.Save(ctx, c); err != nil {
		return backendErr("save company", err)
	}
	return nil
}

// AddProcess appends a fresh process with template defaults. A custom name
// is optional; the fallback mirrors the settings screen's numbering.
func (s *WorkflowService) AddProcess(ctx context.Context, companyID, name string) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if strings.TrimSpace(name) == "" {
		name = "Custom Form " + strconv.Itoa(len(c.OnboardingProcesses)+1)
	}
	p := model.OnboardingProcess{
		ID:              id,
		Name:            name,
		ApplicationForm: model.TemplateApplicationForm(uuid.NewString(), name),
		InterviewScreen: model.TemplateInterviewScreen(),
		RequiredDocs:    []model.RequiredDoc{},
	}
	c.OnboardingProcesses = append(c.OnboardingProcesses, p)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddGeneratedProcess creates a process whose application form carries the
// field definitions an external model produced.
func (s *WorkflowService) AddGeneratedProcess(ctx context.Context, companyID, name string, fields []model.FormField) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	p := model.OnboardingProcess{
		ID:              uuid.NewString(),
		Name:            name,
		ApplicationForm: model.CustomFieldForm(uuid.NewString(), name, fields),
		InterviewScreen: model.TemplateInterviewScreen(),
		RequiredDocs:    []model.RequiredDoc{},
	}
	c.OnboardingProcesses = append(c.OnboardingProcesses, p)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveProcess filters the process out. An absent process id reports
// not-found rather than silently succeeding, so the settings screen can
// tell a stale view from a delete.
func (s *WorkflowService) RemoveProcess(ctx context.Context, companyID, processID string) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}

	before := len(c.OnboardingProcesses)
	out := c.OnboardingProcesses[:0]
	for _, p := range c.OnboardingProcesses {
		if p.ID != processID {
			out = append(out, p)
		}
	}
	c.OnboardingProcesses = out
	if len(c.OnboardingProcesses) == before {
		return nil, &NotFoundError{Entity: "process", ID: processID}
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetApplicationForm swaps the form variant on one process. Exactly one of
// images/fields may be set when kind is custom; both empty resets to an
// empty image list (the upload flow fills it afterwards).
func (s *WorkflowService) SetApplicationForm(ctx context.Context, companyID, processID string, kind model.FormKind, images []string, fields []model.FormField) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	p := c.Process(processID)
	if p == nil {
		return nil, &NotFoundError{Entity: "process", ID: processID}
	}

	var form model.ApplicationForm
	switch {
	case kind == model.FormTemplate:
		form = model.TemplateApplicationForm(p.ApplicationForm.ID, p.ApplicationForm.Name)
	case len(fields) > 0:
		form = model.CustomFieldForm(p.ApplicationForm.ID, p.ApplicationForm.Name, fields)
	default:
		form = model.CustomImageForm(p.ApplicationForm.ID, p.ApplicationForm.Name, images)
	}
	if err := form.Validate(); err != nil {
		return nil, &ValidationError{Field: "applicationForm", Reason: err.Error()}
	}
	p.ApplicationForm = form

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetInterviewScreen swaps the interview screen variant on one process.
func (s *WorkflowService) SetInterviewScreen(ctx context.Context, companyID, processID string, kind model.FormKind, imageURL string) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	p := c.Process(processID)
	if p == nil {
		return nil, &NotFoundError{Entity: "process", ID: processID}
	}

	var screen model.InterviewScreen
	if kind == model.FormTemplate {
		screen = model.TemplateInterviewScreen()
	} else {
		screen = model.CustomInterviewScreen(imageURL)
	}
	if err := screen.Validate(); err != nil {
		return nil, &ValidationError{Field: "interviewScreen", Reason: err.Error()}
	}
	p.InterviewScreen = screen

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddRequiredDoc appends the doc to one process. Adding an id already
// present is a no-op, so the call is idempotent.
func (s *WorkflowService) AddRequiredDoc(ctx context.Context, companyID, processID string, doc model.RequiredDoc) (*model.Company, error) {
	if strings.TrimSpace(doc.ID) == "" || strings.TrimSpace(doc.Label) == "" {
		return nil, &ValidationError{Field: "doc", Reason: "requires id and label"}
	}
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	p := c.Process(processID)
	if p == nil {
		return nil, &NotFoundError{Entity: "process", ID: processID}
	}
	p.AddRequiredDoc(doc)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveRequiredDoc filters the doc out of one process. Removing an absent
// id is a no-op; calling twice gives the same list as calling once.
func (s *WorkflowService) RemoveRequiredDoc(ctx context.Context, companyID, processID, docID string) (*model.Company, error) {
	c, err := s.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	p := c.Process(processID)
	if p == nil {
		return nil, &NotFoundError{Entity: "process", ID: processID}
	}
	p.RemoveRequiredDoc(docID)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
