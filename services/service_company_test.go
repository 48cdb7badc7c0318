package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newCompanyFixture() (*CompanyService, *memCompanies, *memBlobs) {
	companies := newMemCompanies()
	blobs := newMemBlobs()
	svc := NewCompanyService(companies, blobs).
		WithClock(fixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	return svc, companies, blobs
}

func TestCreateCompanyRequiresName(t *testing.T) {
	svc, _, _ := newCompanyFixture()
	_, err := svc.CreateOrUpdate(context.Background(), CompanyUpdate{Name: "  "})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestMergeSavePreservesUnspecifiedFields(t *testing.T) {
	svc, _, _ := newCompanyFixture()
	ctx := context.Background()

	c, err := svc.CreateOrUpdate(ctx, CompanyUpdate{
		Name:    "Sunrise Home Care",
		Address: "12 Elm St",
		Phone:   "555-0100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.CreateOrUpdate(ctx, CompanyUpdate{ID: c.ID, Email: "office@sunrise.example"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address != "12 Elm St" || updated.Phone != "555-0100" {
		t.Errorf("merge dropped fields: %+v", updated)
	}
	if updated.Email != "office@sunrise.example" {
		t.Errorf("email = %q", updated.Email)
	}
	if updated.Name != "Sunrise Home Care" {
		t.Errorf("name = %q", updated.Name)
	}
}

func TestUpdateUnknownCompany(t *testing.T) {
	svc, _, _ := newCompanyFixture()
	_, err := svc.CreateOrUpdate(context.Background(), CompanyUpdate{ID: "missing", Name: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestActiveCompanyIsFirstListed(t *testing.T) {
	svc, _, _ := newCompanyFixture()
	ctx := context.Background()

	active, err := svc.Active(ctx)
	if err != nil {
		t.Fatalf("active on empty store: %v", err)
	}
	if active != nil {
		t.Fatal("expected nil before any company exists")
	}

	first, _ := svc.CreateOrUpdate(ctx, CompanyUpdate{Name: "First"})
	svc.CreateOrUpdate(ctx, CompanyUpdate{Name: "Second"})

	active, err = svc.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active == nil || active.ID != first.ID {
		t.Errorf("active = %+v, want the first company", active)
	}
}

func TestSetLogoReplacesOldBlob(t *testing.T) {
	svc, _, blobs := newCompanyFixture()
	ctx := context.Background()
	c, _ := svc.CreateOrUpdate(ctx, CompanyUpdate{Name: "Sunrise"})

	c, err := svc.SetLogo(ctx, c.ID, &FileUpload{Filename: "logo.png", ContentType: "image/png", Data: strings.NewReader("v1")})
	if err != nil {
		t.Fatalf("first logo: %v", err)
	}
	old := c.LogoURL

	c, err = svc.SetLogo(ctx, c.ID, &FileUpload{Filename: "logo.png", ContentType: "image/png", Data: strings.NewReader("v2")})
	if err != nil {
		t.Fatalf("second logo: %v", err)
	}
	if c.LogoURL == old {
		t.Error("locator did not change")
	}
	if _, ok := blobs.objects[old]; ok {
		t.Error("old logo blob survived replacement")
	}
	if _, ok := blobs.objects[c.LogoURL]; !ok {
		t.Error("new logo blob missing")
	}
}

func TestDeleteCompany(t *testing.T) {
	svc, _, _ := newCompanyFixture()
	ctx := context.Background()
	c, _ := svc.CreateOrUpdate(ctx, CompanyUpdate{Name: "Sunrise"})

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup after delete = %v, want not-found", err)
	}
	if err := svc.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want not-found", err)
	}
}
