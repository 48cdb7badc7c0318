package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"onboard_panel/model"
)

func TestAttachAndDetachFile(t *testing.T) {
	svc, _, blobs := newLifecycleFixture()
	ctx := context.Background()
	c, _ := svc.SubmitApplication(ctx, validApplication())

	upload := &FileUpload{Filename: "tb-test.pdf", ContentType: "application/pdf", Data: strings.NewReader("scan")}
	out, err := svc.AttachFile(ctx, c.ID, DocRequired, "TB Test", upload)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(out.Documents) != 1 {
		t.Fatalf("documents len = %d, want 1", len(out.Documents))
	}
	doc := out.Documents[0]
	if doc.Title != "TB Test" || doc.URL == "" || doc.ID != doc.URL {
		t.Errorf("unexpected entry: %+v", doc)
	}
	if len(out.MiscDocuments) != 0 {
		t.Error("required upload landed in misc list")
	}

	out, err = svc.DetachFile(ctx, c.ID, doc.URL)
	if err != nil {
		t.Fatalf("detach: %v", err)
	}
	if len(out.Documents) != 0 {
		t.Errorf("documents len = %d after detach, want 0", len(out.Documents))
	}
	if _, ok := blobs.objects[doc.URL]; ok {
		t.Error("blob survived detach")
	}
}

func TestAttachFileMiscCategory(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()
	c, _ := svc.SubmitApplication(ctx, validApplication())

	upload := &FileUpload{Filename: "note.pdf", ContentType: "application/pdf", Data: strings.NewReader("x")}
	out, err := svc.AttachFile(ctx, c.ID, DocMisc, "Note", upload)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(out.MiscDocuments) != 1 || len(out.Documents) != 0 {
		t.Errorf("misc=%d required=%d, want 1/0", len(out.MiscDocuments), len(out.Documents))
	}
}

func TestAttachFileRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	upload := &FileUpload{Filename: "x", Data: strings.NewReader("x")}
	if _, err := svc.AttachFile(context.Background(), "id", DocCategory("other"), "t", upload); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestUpdateLicense(t *testing.T) {
	svc, _, _ := newLifecycleFixture()
	ctx := context.Background()
	c, _ := svc.SubmitApplication(ctx, validApplication())

	exp := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	upload := &FileUpload{Filename: "license.jpg", ContentType: "image/jpeg", Data: strings.NewReader("img")}
	out, err := svc.UpdateLicense(ctx, c.ID, upload, exp)
	if err != nil {
		t.Fatalf("update license: %v", err)
	}
	if out.DriversLicense == "" {
		t.Error("license locator not stored")
	}
	if out.DriversLicenseExpiration == nil || !out.DriversLicenseExpiration.Equal(exp) {
		t.Errorf("expiration = %v, want %v", out.DriversLicenseExpiration, exp)
	}
}

func TestExpiringLicenses(t *testing.T) {
	svc, candidates, _ := newLifecycleFixture()
	ctx := context.Background()

	soon := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	far := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	mk := func(id string, status model.Status, exp *time.Time) {
		candidates.docs[id] = model.Candidate{
			ID: id, Status: status, FirstName: "a", LastName: "b", Email: "e",
			DriversLicenseExpiration: exp,
		}
	}
	mk("expiring", model.StatusEmployee, &soon)
	mk("fine", model.StatusEmployee, &far)
	mk("no-license", model.StatusEmployee, nil)
	mk("still-candidate", model.StatusCandidate, &soon)

	out, err := svc.ExpiringLicenses(ctx, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expiring: %v", err)
	}
	if len(out) != 1 || out[0].ID != "expiring" {
		t.Errorf("got %d results, want just the expiring employee", len(out))
	}
}
