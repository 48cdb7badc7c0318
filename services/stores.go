package services

import (
	"context"
	"io"
	"time"

	"onboard_panel/model"
)

// CandidateStore is the document-store surface the lifecycle service needs.
// The Mongo implementation lives in internal/repository; tests use an
// in-memory fake.
type CandidateStore interface {
	Insert(ctx context.Context, c *model.Candidate) error
	// Get returns (nil, nil) when the id does not resolve.
	Get(ctx context.Context, id string) (*model.Candidate, error)
	// Replace overwrites the whole document for the given id.
	Replace(ctx context.Context, c *model.Candidate) error
	Delete(ctx context.Context, id string) error
	// ListByStatus returns records matching any of the given statuses,
	// sorted by created_at descending.
	ListByStatus(ctx context.Context, statuses ...model.Status) ([]model.Candidate, error)
	DeleteAll(ctx context.Context) error
}

// CompanyStore is the document-store surface for tenant documents.
type CompanyStore interface {
	// Get returns (nil, nil) when the id does not resolve.
	Get(ctx context.Context, id string) (*model.Company, error)
	// Save writes the full company document (upsert by id).
	Save(ctx context.Context, c *model.Company) error
	Delete(ctx context.Context, id string) error
	// List returns companies in store order; the first one is treated as
	// the active tenant.
	List(ctx context.Context) ([]model.Company, error)
	DeleteAll(ctx context.Context) error
}

// UserStore holds admin/superuser profiles.
type UserStore interface {
	Insert(ctx context.Context, u *model.AdminUser) error
	Get(ctx context.Context, uid string) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Update(ctx context.Context, u *model.AdminUser) error
	Delete(ctx context.Context, uid string) error
	List(ctx context.Context) ([]model.AdminUser, error)
}

// BlobStore is the binary-attachment surface. Locators returned by Upload
// are opaque keys of the form {ownerId}/{category}/{timestamp}-{filename}.
type BlobStore interface {
	Upload(ctx context.Context, ownerID, category, filename, contentType string, r io.Reader) (string, error)
	// Open returns a reader over the blob bytes. A missing key fails with
	// the storage package's not-found error.
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
	Delete(ctx context.Context, locator string) error
}

// Clock lets tests pin record timestamps.
type Clock func() time.Time
