package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"onboard_panel/model"
)

func newLifecycleFixture() (*LifecycleService, *memCandidates, *memBlobs) {
	candidates := newMemCandidates()
	blobs := newMemBlobs()
	svc := NewLifecycleService(candidates, blobs).
		WithClock(fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	return svc, candidates, blobs
}

func validApplication() *Application {
	return &Application{
		FirstName:   "Maria",
		LastName:    "Lopez",
		Email:       "maria@example.com",
		ApplyingFor: []string{"CNA"},
	}
}

func TestSubmitApplicationCreatesCandidate(t *testing.T) {
	svc, candidates, _ := newLifecycleFixture()

	c, err := svc.SubmitApplication(context.Background(), validApplication())
	if err != nil {
		t.Fatalf("SubmitApplication: %v", err)
	}
	if c.Status != model.StatusCandidate {
		t.Errorf("status = %q, want %q", c.Status, model.StatusCandidate)
	}
	if c.ID == "" {
		t.Error("expected a generated id")
	}
	if c.Documents == nil || c.MiscDocuments == nil {
		t.Error("document lists must be initialized empty, not nil")
	}
	if len(candidates.docs) != 1 {
		t.Errorf("store holds %d records, want 1", len(candidates.docs))
	}
}

func TestSubmitApplicationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Application)
	}{
		{"empty first name", func(a *Application) { a.FirstName = "" }},
		{"blank first name", func(a *Application) { a.FirstName = "   " }},
		{"empty last name", func(a *Application) { a.LastName = "" }},
		{"empty email", func(a *Application) { a.Email = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, candidates, _ := newLifecycleFixture()
			app := validApplication()
			tt.mutate(app)

			_, err := svc.SubmitApplication(context.Background(), app)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			// Validation must fire before any write.
			if len(candidates.docs) != 0 {
				t.Errorf("store holds %d records after failed validation, want 0", len(candidates.docs))
			}
		})
	}
}

func TestSubmitApplicationUploadsFiles(t *testing.T) {
	svc, _, blobs := newLifecycleFixture()
	app := validApplication()
	app.Resume = &FileUpload{Filename: "resume.pdf", ContentType: "application/pdf", Data: strings.NewReader("pdf bytes")}

	c, err := svc.SubmitApplication(context.Background(), app)
	if err != nil {
		t.Fatalf("SubmitApplication: %v", err)
	}
	if c.Resume == "" {
		t.Fatal("expected a resume locator")
	}
	if !strings.HasPrefix(c.Resume, c.ID+"/resume/") {
		t.Errorf("locator %q not under %s/resume/", c.Resume, c.ID)
	}
	if _, ok := blobs.objects[c.Resume]; !ok {
		t.Errorf("blob %q not stored", c.Resume)
	}
}

func TestFullPipeline(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()

	c, err := svc.SubmitApplication(ctx, validApplication())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	steps := []struct {
		op   func(context.Context, string) (*model.Candidate, error)
		want model.Status
	}{
		{svc.AdvanceToInterview, model.StatusInterview},
		{svc.ApproveForHire, model.StatusNewHire},
		{svc.MarkAsEmployee, model.StatusEmployee},
	}
	for _, step := range steps {
		out, err := step.op(ctx, c.ID)
		if err != nil {
			t.Fatalf("transition to %s: %v", step.want, err)
		}
		if out.Status != step.want {
			t.Fatalf("status = %q, want %q", out.Status, step.want)
		}
	}

	out, err := svc.Deactivate(ctx, c.ID, "resigned", "")
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if out.Status != model.StatusInactive {
		t.Errorf("status = %q, want %q", out.Status, model.StatusInactive)
	}
	if out.InactiveInfo == nil || out.InactiveInfo.Reason != "resigned" {
		t.Errorf("inactive info not persisted: %+v", out.InactiveInfo)
	}
}

func TestSkippedTransitionFailsAndLeavesStatus(t *testing.T) {
	svc, candidates, _ := newLifecycleFixture()
	ctx := context.Background()

	c, _ := svc.SubmitApplication(ctx, validApplication())

	// approve-for-hire expects interview, record is still a candidate
	_, err := svc.ApproveForHire(ctx, c.ID)
	var tErr *InvalidTransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
	if tErr.From != model.StatusCandidate {
		t.Errorf("From = %q, want %q", tErr.From, model.StatusCandidate)
	}
	if got := candidates.docs[c.ID].Status; got != model.StatusCandidate {
		t.Errorf("status changed to %q after failed transition", got)
	}
}

func TestDeactivateRequiresReason(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	_, err := svc.Deactivate(context.Background(), "whatever", "  ", "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestRejectRemovesRecord(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()

	c, _ := svc.SubmitApplication(ctx, validApplication())
	if err := svc.Reject(ctx, c.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	_, err := svc.Get(ctx, c.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup after reject = %v, want not-found", err)
	}
}

func TestRejectRefusedAfterHire(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()

	c, _ := svc.SubmitApplication(ctx, validApplication())
	svc.AdvanceToInterview(ctx, c.ID)
	svc.ApproveForHire(ctx, c.ID)

	err := svc.Reject(ctx, c.ID)
	var tErr *InvalidTransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
	if _, err := svc.Get(ctx, c.ID); err != nil {
		t.Errorf("record should survive refused reject: %v", err)
	}
}

func TestAttachReviewOnlyDuringInterview(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()
	review := model.InterviewReview{Reviewer: "pat", Notes: "strong"}

	c, _ := svc.SubmitApplication(ctx, validApplication())

	if _, err := svc.AttachReview(ctx, c.ID, review); err == nil {
		t.Fatal("review attached in candidate phase, want failure")
	}

	svc.AdvanceToInterview(ctx, c.ID)
	out, err := svc.AttachReview(ctx, c.ID, review)
	if err != nil {
		t.Fatalf("attach review: %v", err)
	}
	if out.Status != model.StatusInterview {
		t.Errorf("attaching a review changed status to %q", out.Status)
	}
	if out.InterviewReview == nil || out.InterviewReview.Reviewer != "pat" {
		t.Errorf("review not persisted: %+v", out.InterviewReview)
	}
	if out.InterviewReview.ReviewedAt.IsZero() {
		t.Error("ReviewedAt not defaulted")
	}
}

func TestImportLegacyEmployee(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	c, err := svc.ImportLegacyEmployee(context.Background(), validApplication())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if c.Status != model.StatusEmployee {
		t.Errorf("status = %q, want %q", c.Status, model.StatusEmployee)
	}
}

func TestListByPhaseSortsNewestFirst(t *testing.T) {
	candidates := newMemCandidates()
	blobs := newMemBlobs()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	svc := NewLifecycleService(candidates, blobs).WithClock(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	})

	ctx := context.Background()
	first, _ := svc.SubmitApplication(ctx, validApplication())
	second, _ := svc.SubmitApplication(ctx, validApplication())

	out, err := svc.ListByPhase(ctx, model.StatusCandidate)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != second.ID || out[1].ID != first.ID {
		t.Error("list is not sorted newest first")
	}
}
