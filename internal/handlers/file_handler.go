package handlers

import (
	"errors"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"onboard_panel/internal/storage"
	"onboard_panel/prometheus"
	"onboard_panel/services"
)

// contentTypeFor guesses a content type from the file key's extension. The
// blob store does not serve types back on download, so the four types the
// UI uploads are matched here and everything else streams as octets.
func contentTypeFor(fileKey string) string {
	key := strings.ToLower(fileKey)
	switch {
	case strings.HasSuffix(key, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// GetFileHandler godoc
// @Summary      Stream a stored attachment
// @Description  Resolves an owner id plus URL-encoded file key against the blob store and streams the bytes back.
// @Tags         files
// @Produce      octet-stream
// @Param        employeeId  path  string  true  "Owner id"
// @Param        fileKey     path  string  true  "URL-encoded blob locator"
// @Success      200
// @Failure      404  {string}  string  "File not found"
// @Failure      500  {string}  string  "Error retrieving file"
// @Router       /employees/{employeeId}/file/{fileKey} [get]
func GetFileHandler(blobs services.BlobStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileKey, err := url.PathUnescape(c.Params("fileKey"))
		if err != nil {
			fileKey = c.Params("fileKey")
		}
		defer prometheus.TrackBlobOperation("download")(time.Now())

		r, err := blobs.Open(c.Context(), fileKey)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).SendString("File not found")
			}
			zap.L().Error("file retrieval failed",
				zap.String("employee", c.Params("employeeId")),
				zap.String("key", fileKey), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString("Error retrieving file")
		}
		defer r.Close()

		c.Set(fiber.HeaderContentType, contentTypeFor(fileKey))
		data, err := io.ReadAll(r)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error retrieving file")
		}
		return c.Send(data)
	}
}
