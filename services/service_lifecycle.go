package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"onboard_panel/model"
)

// LifecycleService owns the candidate status machine. Every transition is a
// single-document update; list-view invalidation is the caller's problem.
type LifecycleService struct {
	candidates CandidateStore
	blobs      BlobStore
	now        Clock
}

func NewLifecycleService(candidates CandidateStore, blobs BlobStore) *LifecycleService {
	return &LifecycleService{candidates: candidates, blobs: blobs, now: time.Now}
}

// WithClock swaps the timestamp source, for tests.
func (s *LifecycleService) WithClock(now Clock) *LifecycleService {
	s.now = now
	return s
}

// Application carries a public submission. Resume and license are optional
// upload streams; their locators end up embedded in the record.
type Application struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	ApplyingFor []string
	Answers     map[string]string

	Resume         *FileUpload
	DriversLicense *FileUpload
}

// FileUpload is one multipart file part.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

func (a *Application) validate() error {
	switch {
	case strings.TrimSpace(a.FirstName) == "":
		return &ValidationError{Field: "firstName", Reason: "is required"}
	case strings.TrimSpace(a.LastName) == "":
		return &ValidationError{Field: "lastName", Reason: "is required"}
	case strings.TrimSpace(a.Email) == "":
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	return nil
}

// SubmitApplication validates the submission, uploads any file parts and
// creates the record in the candidate state. Validation happens before any
// write, so a rejected submission leaves nothing behind in the store.
func (s *LifecycleService) SubmitApplication(ctx context.Context, app *Application) (*model.Candidate, error) {
	if err := app.validate(); err != nil {
		return nil, err
	}

	c := &model.Candidate{
		ID:            uuid.NewString(),
		CreatedAt:     s.now().UTC(),
		Status:        model.StatusCandidate,
		FirstName:     app.FirstName,
		LastName:      app.LastName,
		Email:         app.Email,
		Phone:         app.Phone,
		Address:       app.Address,
		ApplyingFor:   app.ApplyingFor,
		Answers:       app.Answers,
		Documents:     []model.DocumentFile{},
		MiscDocuments: []model.DocumentFile{},
	}
	if c.ApplyingFor == nil {
		c.ApplyingFor = []string{}
	}

	if app.Resume != nil {
		url, err := s.blobs.Upload(ctx, c.ID, "resume", app.Resume.Filename, app.Resume.ContentType, app.Resume.Data)
		if err != nil {
			return nil, backendErr("upload resume", err)
		}
		c.Resume = url
	}
	if app.DriversLicense != nil {
		url, err := s.blobs.Upload(ctx, c.ID, "drivers-license", app.DriversLicense.Filename, app.DriversLicense.ContentType, app.DriversLicense.Data)
		if err != nil {
			return nil, backendErr("upload drivers license", err)
		}
		c.DriversLicense = url
	}

	if err := s.candidates.Insert(ctx, c); err != nil {
		// Uploaded blobs are orphaned here; accepted failure mode.
		zap.L().Error("candidate insert failed after upload", zap.String("id", c.ID), zap.Error(err))
		return nil, backendErr("create candidate", err)
	}
	return c, nil
}

// ImportLegacyEmployee creates a record directly in the employee state, for
// staff hired before the system existed.
func (s *LifecycleService) ImportLegacyEmployee(ctx context.Context, app *Application) (*model.Candidate, error) {
	if err := app.validate(); err != nil {
		return nil, err
	}
	c := &model.Candidate{
		ID:            uuid.NewString(),
		CreatedAt:     s.now().UTC(),
		Status:        model.StatusEmployee,
		FirstName:     app.FirstName,
		LastName:      app.LastName,
		Email:         app.Email,
		Phone:         app.Phone,
		Address:       app.Address,
		ApplyingFor:   app.ApplyingFor,
		Answers:       app.Answers,
		Documents:     []model.DocumentFile{},
		MiscDocuments: []model.DocumentFile{},
	}
	if c.ApplyingFor == nil {
		c.ApplyingFor = []string{}
	}
	if err := s.candidates.Insert(ctx, c); err != nil {
		return nil, backendErr("import legacy employee", err)
	}
	return c, nil
}

// Get returns one record or a NotFoundError.
func (s *LifecycleService) Get(ctx context.Context, id string) (*model.Candidate, error) {
	c, err := s.candidates.Get(ctx, id)
	if err != nil {
		return nil, backendErr("get candidate", err)
	}
	if c == nil {
		return nil, &NotFoundError{Entity: "candidate", ID: id}
	}
	return c, nil
}

// advance performs one forward transition after checking the persisted
// status, then applies mutate to the in-memory copy before writing back.
func (s *LifecycleService) advance(ctx context.Context, id string, op string, target model.Status, mutate func(*model.Candidate)) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanAdvanceTo(target) {
		return nil, &InvalidTransitionError{From: c.Status, Op: op}
	}
	c.Status = target
	if mutate != nil {
		mutate(c)
	}
	if err := s.candidates.Replace(ctx, c); err != nil {
		return nil, backendErr(op, err)
	}
	return c, nil
}

// AdvanceToInterview moves candidate → interview.
func (s *LifecycleService) AdvanceToInterview(ctx context.Context, id string) (*model.Candidate, error) {
	return s.advance(ctx, id, "advance to interview", model.StatusInterview, nil)
}

// ApproveForHire moves interview → new-hire.
func (s *LifecycleService) ApproveForHire(ctx context.Context, id string) (*model.Candidate, error) {
	return s.advance(ctx, id, "approve for hire", model.StatusNewHire, nil)
}

// MarkAsEmployee moves new-hire → employee.
func (s *LifecycleService) MarkAsEmployee(ctx context.Context, id string) (*model.Candidate, error) {
	return s.advance(ctx, id, "mark as employee", model.StatusEmployee, nil)
}

// Deactivate moves employee → inactive and persists the reason. The reason
// is required; inactive is the only terminal status.
func (s *LifecycleService) Deactivate(ctx context.Context, id, reason, detail string) (*model.Candidate, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Field: "reason", Reason: "is required"}
	}
	return s.advance(ctx, id, "deactivate", model.StatusInactive, func(c *model.Candidate) {
		c.InactiveInfo = &model.InactiveInfo{Reason: reason, Detail: detail, At: s.now().UTC()}
	})
}

// Reject hard-deletes the record. Only candidates still in the candidate or
// interview phase can be rejected; hired staff must be deactivated instead.
// Blob attachments are not cleaned up (admin responsibility).
func (s *LifecycleService) Reject(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !c.Status.Rejectable() {
		return &InvalidTransitionError{From: c.Status, Op: "reject"}
	}
	if err := s.candidates.Delete(ctx, id); err != nil {
		return backendErr("reject candidate", err)
	}
	return nil
}

// AttachReview stores the interview review without changing status. Valid
// only while the record sits in the interview phase. Nothing forces a
// subsequent ApproveForHire; a review can exist on a record that is later
// rejected.
func (s *LifecycleService) AttachReview(ctx context.Context, id string, review model.InterviewReview) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.StatusInterview {
		return nil, &InvalidTransitionError{From: c.Status, Op: "attach review"}
	}
	if review.ReviewedAt.IsZero() {
		review.ReviewedAt = s.now().UTC()
	}
	c.InterviewReview = &review
	if err := s.candidates.Replace(ctx, c); err != nil {
		return nil, backendErr("attach review", err)
	}
	return c, nil
}

// ListByPhase returns the records an admin dashboard tab shows, newest
// first.
func (s *LifecycleService) ListByPhase(ctx context.Context, statuses ...model.Status) ([]model.Candidate, error) {
	out, err := s.candidates.ListByStatus(ctx, statuses...)
	if err != nil {
		return nil, backendErr("list candidates", err)
	}
	return out, nil
}

// ResetDemoData deletes every candidate record. Superuser only.
func (s *LifecycleService) ResetDemoData(ctx context.Context) error {
	if err := s.candidates.DeleteAll(ctx); err != nil {
		return backendErr("reset demo data", err)
	}
	return nil
}
