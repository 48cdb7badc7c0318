package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotFound reports a locator that resolves to no stored blob.
var ErrNotFound = mongo.ErrFileNotFound

// GridFSStore keeps binary attachments (resumes, licenses, logos, form page
// images) in a GridFS bucket of the same database that holds the documents.
// The locator is the GridFS filename: {ownerId}/{category}/{timestamp}-{name}.
type GridFSStore struct {
	bucket *mongo.GridFSBucket
	now    func() time.Time
}

func NewGridFSStore(db *mongo.Database) *GridFSStore {
	return &GridFSStore{bucket: db.GridFSBucket(), now: time.Now}
}

// WithClock pins locator timestamps, for tests.
func (s *GridFSStore) WithClock(now func() time.Time) *GridFSStore {
	s.now = now
	return s
}

// Upload streams the file in and returns its locator. The content type
// rides along as file metadata.
func (s *GridFSStore) Upload(ctx context.Context, ownerID, category, filename, contentType string, r io.Reader) (string, error) {
	locator := fmt.Sprintf("%s/%s/%d-%s", ownerID, category, s.now().UnixMilli(), filename)
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if _, err := s.bucket.UploadFromStream(ctx, locator, r, opts); err != nil {
		return "", err
	}
	return locator, nil
}

// Open returns a reader over the blob bytes. A missing locator fails with
// ErrNotFound.
func (s *GridFSStore) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(ctx, locator)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// Delete removes every revision stored under the locator. Deleting a
// missing locator fails with ErrNotFound.
func (s *GridFSStore) Delete(ctx context.Context, locator string) error {
	cursor, err := s.bucket.Find(ctx, bson.M{"filename": locator})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	found := false
	for cursor.Next(ctx) {
		var file struct {
			ID bson.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return err
		}
		if err := s.bucket.Delete(ctx, file.ID); err != nil {
			return err
		}
		found = true
	}
	if err := cursor.Err(); err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
