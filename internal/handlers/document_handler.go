package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"onboard_panel/dto"
	"onboard_panel/services"
)

// UploadDocumentHandler godoc
// @Summary      Attach a file to a candidate record
// @Description  Multipart upload with a "file" part, a "title" field and a "category" field ("required" or "misc").
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  dto.ResultResponse
// @Failure      400  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ResultResponse
// @Router       /candidates/{id}/documents [post]
func UploadDocumentHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, closeFile, err := openPart(c, "file")
		if err != nil || file == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("missing file part"))
		}
		defer closeFile()

		title := c.FormValue("title")
		if title == "" {
			title = file.Filename
		}
		category := services.DocCategory(c.FormValue("category", string(services.DocRequired)))

		out, err := svc.AttachFile(c.Context(), c.Params("id"), category, title, file)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OKWithID(out.ID))
	}
}

// DeleteDocumentHandler removes a file from both attachment lists; the
// locator comes in the query to survive slashes.
func DeleteDocumentHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locator := c.Query("locator")
		if locator == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("locator query parameter is required"))
		}
		out, err := svc.DetachFile(c.Context(), c.Params("id"), locator)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OKWithID(out.ID))
	}
}

// UpdateLicenseHandler uploads a fresh driver's license with its expiration
// date (RFC 3339 "expiration" form field).
func UpdateLicenseHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, closeFile, err := openPart(c, "file")
		if err != nil || file == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("missing file part"))
		}
		defer closeFile()

		expiration, err := time.Parse(time.RFC3339, c.FormValue("expiration"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("expiration must be RFC 3339"))
		}

		out, err := svc.UpdateLicense(c.Context(), c.Params("id"), file, expiration)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OKWithID(out.ID))
	}
}

// ExpiringDocumentationHandler lists personnel whose license expires within
// the window (default 30 days), expired ones included.
func ExpiringDocumentationHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		cutoff := time.Now().UTC().AddDate(0, 0, days)
		out, err := svc.ExpiringLicenses(c.Context(), cutoff)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(out)
	}
}
