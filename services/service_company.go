package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"onboard_panel/model"
)

// CompanyService handles tenant documents. Updates are merge-saves: fields
// the caller leaves empty keep their stored values.
type CompanyService struct {
	companies CompanyStore
	blobs     BlobStore
	now       Clock
}

func NewCompanyService(companies CompanyStore, blobs BlobStore) *CompanyService {
	return &CompanyService{companies: companies, blobs: blobs, now: time.Now}
}

func (s *CompanyService) WithClock(now Clock) *CompanyService {
	s.now = now
	return s
}

// CompanyUpdate carries a partial company profile. Nil/empty fields are
// preserved on merge.
type CompanyUpdate struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Fax     string
	Email   string
}

// CreateOrUpdate creates a company on first save and merge-updates it
// afterwards. Name is required before the tenant counts as set up.
func (s *CompanyService) CreateOrUpdate(ctx context.Context, upd CompanyUpdate) (*model.Company, error) {
	if upd.ID == "" && strings.TrimSpace(upd.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	var c *model.Company
	if upd.ID != "" {
		existing, err := s.companies.Get(ctx, upd.ID)
		if err != nil {
			return nil, backendErr("get company", err)
		}
		if existing == nil {
			return nil, &NotFoundError{Entity: "company", ID: upd.ID}
		}
		c = existing
	} else {
		c = &model.Company{
			ID:                  uuid.NewString(),
			CreatedAt:           s.now().UTC(),
			OnboardingProcesses: []model.OnboardingProcess{},
		}
	}

	if upd.Name != "" {
		c.Name = upd.Name
	}
	if upd.Address != "" {
		c.Address = upd.Address
	}
	if upd.Phone != "" {
		c.Phone = upd.Phone
	}
	if upd.Fax != "" {
		c.Fax = upd.Fax
	}
	if upd.Email != "" {
		c.Email = upd.Email
	}

	if err := s.companies.Save(ctx, c); err != nil {
		return nil, backendErr("save company", err)
	}
	return c, nil
}

// Get returns one company or a NotFoundError.
func (s *CompanyService) Get(ctx context.Context, id string) (*model.Company, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, backendErr("get company", err)
	}
	if c == nil {
		return nil, &NotFoundError{Entity: "company", ID: id}
	}
	return c, nil
}

// List returns all companies in store order.
func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	out, err := s.companies.List(ctx)
	if err != nil {
		return nil, backendErr("list companies", err)
	}
	return out, nil
}

// Active returns the company that drives the public application form: the
// first one in list order. Multi-tenant behavior with more than one company
// is undefined; this deployment assumes a single tenant. Returns (nil, nil)
// when no company is set up yet.
func (s *CompanyService) Active(ctx context.Context) (*model.Company, error) {
	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, backendErr("list companies", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// Delete removes the company document. Blob attachments of its processes
// and its logo are not cascade-deleted.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return backendErr("get company", err)
	}
	if c == nil {
		return &NotFoundError{Entity: "company", ID: id}
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return backendErr("delete company", err)
	}
	return nil
}

// DeleteAll wipes every tenant. Superuser only.
func (s *CompanyService) DeleteAll(ctx context.Context) error {
	if err := s.companies.DeleteAll(ctx); err != nil {
		return backendErr("delete all companies", err)
	}
	return nil
}

// SetLogo uploads a new logo, stores its locator and best-effort deletes
// the previous one.
func (s *CompanyService) SetLogo(ctx context.Context, id string, file *FileUpload) (*model.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.Upload(ctx, c.ID, "logos", file.Filename, file.ContentType, file.Data)
	if err != nil {
		return nil, backendErr("upload logo", err)
	}

	old := c.LogoURL
	c.LogoURL = url
	if err := s.companies.Save(ctx, c); err != nil {
		return nil, backendErr("save company", err)
	}

	if old != "" {
		if err := s.blobs.Delete(ctx, old); err != nil {
			zap.L().Warn("old logo delete failed", zap.String("locator", old), zap.Error(err))
		}
	}
	return c, nil
}

// RemoveLogo clears the locator and best-effort deletes the blob.
func (s *CompanyService) RemoveLogo(ctx context.Context, id string) (*model.Company, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := c.LogoURL
	c.LogoURL = ""
	if err := s.companies.Save(ctx, c); err != nil {
		return nil, backendErr("save company", err)
	}
	if old != "" {
		if err := s.blobs.Delete(ctx, old); err != nil {
			zap.L().Warn("logo delete failed", zap.String("locator", old), zap.Error(err))
		}
	}
	return c, nil
}
