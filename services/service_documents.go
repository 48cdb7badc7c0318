package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"onboard_panel/model"
)

// DocCategory routes an upload into one of the two attachment lists on a
// candidate record.
type DocCategory string

const (
	DocRequired DocCategory = "required"
	DocMisc     DocCategory = "misc"
)

// AttachFile uploads the file and appends a document entry to the list the
// category selects. The blob locator doubles as the entry id.
func (s *LifecycleService) AttachFile(ctx context.Context, id string, category DocCategory, title string, file *FileUpload) (*model.Candidate, error) {
	if category != DocRequired && category != DocMisc {
		return nil, &ValidationError{Field: "category", Reason: "must be 'required' or 'misc'"}
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.Upload(ctx, c.ID, string(category), file.Filename, file.ContentType, file.Data)
	if err != nil {
		return nil, backendErr("upload document", err)
	}

	entry := model.DocumentFile{ID: url, Title: title, URL: url}
	if category == DocRequired {
		c.Documents = append(c.Documents, entry)
	} else {
		c.MiscDocuments = append(c.MiscDocuments, entry)
	}

	if err := s.candidates.Replace(ctx, c); err != nil {
		zap.L().Error("document list update failed after upload",
			zap.String("id", c.ID), zap.String("locator", url), zap.Error(err))
		return nil, backendErr("attach document", err)
	}
	return c, nil
}

// DetachFile deletes the blob and filters the locator out of both
// attachment lists. A blob-side delete failure is logged and the list
// update still goes through, leaving at worst an orphaned blob.
func (s *LifecycleService) DetachFile(ctx context.Context, id, locator string) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.blobs.Delete(ctx, locator); err != nil {
		zap.L().Warn("blob delete failed, removing list entry anyway",
			zap.String("id", id), zap.String("locator", locator), zap.Error(err))
	}

	c.RemoveDocument(locator)
	if err := s.candidates.Replace(ctx, c); err != nil {
		return nil, backendErr("detach document", err)
	}
	return c, nil
}

// UpdateLicense uploads a fresh driver's license scan and stores it with
// its expiration date.
func (s *LifecycleService) UpdateLicense(ctx context.Context, id string, file *FileUpload, expiration time.Time) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.Upload(ctx, c.ID, "drivers-license", file.Filename, file.ContentType, file.Data)
	if err != nil {
		return nil, backendErr("upload drivers license", err)
	}

	exp := expiration.UTC()
	c.DriversLicense = url
	c.DriversLicenseExpiration = &exp
	if err := s.candidates.Replace(ctx, c); err != nil {
		return nil, backendErr("update drivers license", err)
	}
	return c, nil
}

// ExpiringLicenses returns active personnel whose license expiration falls
// before the cutoff (already expired ones included), newest record first.
func (s *LifecycleService) ExpiringLicenses(ctx context.Context, cutoff time.Time) ([]model.Candidate, error) {
	personnel, err := s.candidates.ListByStatus(ctx, model.StatusNewHire, model.StatusEmployee)
	if err != nil {
		return nil, backendErr("list personnel", err)
	}
	out := []model.Candidate{}
	for _, c := range personnel {
		if c.DriversLicenseExpiration != nil && c.DriversLicenseExpiration.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}
