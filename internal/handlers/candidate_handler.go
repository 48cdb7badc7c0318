package handlers

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"onboard_panel/dto"
	"onboard_panel/model"
	"onboard_panel/prometheus"
	"onboard_panel/services"
)

// openPart adapts one multipart file part into a service upload. Returns
// nil when the part is absent.
func openPart(c *fiber.Ctx, name string) (*services.FileUpload, func(), error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.FileUpload{
		Filename:    fh.Filename,
		ContentType: partContentType(fh),
		Data:        f,
	}, func() { f.Close() }, nil
}

func partContentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// SubmitApplicationHandler godoc
// @Summary      Submit a public application
// @Description  Creates a candidate record in the candidate phase. Accepts multipart with a JSON "application" field plus optional "resume" and "driversLicense" file parts.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.ResultResponse
// @Failure      400  {object}  dto.ResultResponse
// @Failure      500  {object}  dto.ResultResponse
// @Router       /application [post]
func SubmitApplicationHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ApplicationDTO
		if raw := c.FormValue("application"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &body); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid application payload"))
			}
		} else if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}

		app := &services.Application{
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			Email:       body.Email,
			Phone:       body.Phone,
			Address:     body.Address,
			ApplyingFor: body.ApplyingFor,
			Answers:     body.Answers,
		}

		resume, closeResume, err := openPart(c, "resume")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("unreadable resume part"))
		}
		defer closeResume()
		license, closeLicense, err := openPart(c, "driversLicense")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("unreadable license part"))
		}
		defer closeLicense()
		app.Resume = resume
		app.DriversLicense = license

		created, err := svc.SubmitApplication(c.Context(), app)
		if err != nil {
			return failJSON(c, err)
		}
		prometheus.RecordTransition(string(model.StatusCandidate))
		return c.Status(fiber.StatusCreated).JSON(dto.OKWithID(created.ID))
	}
}

// ImportLegacyEmployeeHandler creates a record directly in the employee
// phase, for staff predating the system.
func ImportLegacyEmployeeHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ApplicationDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		created, err := svc.ImportLegacyEmployee(c.Context(), &services.Application{
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			Email:       body.Email,
			Phone:       body.Phone,
			Address:     body.Address,
			ApplyingFor: body.ApplyingFor,
			Answers:     body.Answers,
		})
		if err != nil {
			return failJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.OKWithID(created.ID))
	}
}

// phases maps a dashboard tab name to the statuses it lists.
var phases = map[string][]model.Status{
	"candidates": {model.StatusCandidate},
	"interview":  {model.StatusInterview},
	"new-hires":  {model.StatusNewHire},
	"employees":  {model.StatusEmployee, model.StatusInactive},
	"personnel":  {model.StatusNewHire, model.StatusEmployee, model.StatusInactive},
}

// ListCandidatesHandler godoc
// @Summary      List pipeline records for one dashboard phase
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        phase  path  string  true  "candidates | interview | new-hires | employees | personnel"
// @Success      200  {array}   model.Candidate
// @Failure      400  {object}  dto.ResultResponse
// @Router       /candidates/phase/{phase} [get]
func ListCandidatesHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		statuses, ok := phases[c.Params("phase")]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("unknown phase"))
		}
		out, err := svc.ListByPhase(c.Context(), statuses...)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(out)
	}
}

// GetCandidateHandler returns one record by id.
func GetCandidateHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(out)
	}
}

// transition wraps one forward lifecycle operation into a handler.
func transition(to model.Status, op func(*fiber.Ctx, string) (*model.Candidate, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := op(c, c.Params("id"))
		if err != nil {
			return failJSON(c, err)
		}
		prometheus.RecordTransition(string(to))
		return c.JSON(dto.OKWithID(out.ID))
	}
}

// AdvanceToInterviewHandler godoc
// @Summary      Move a candidate to the interview phase
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ResultResponse
// @Failure      409  {object}  dto.ResultResponse
// @Router       /candidates/{id}/advance-to-interview [post]
func AdvanceToInterviewHandler(svc *services.LifecycleService) fiber.Handler {
	return transition(model.StatusInterview, func(c *fiber.Ctx, id string) (*model.Candidate, error) {
		return svc.AdvanceToInterview(c.Context(), id)
	})
}

// ApproveForHireHandler moves interview → new-hire.
func ApproveForHireHandler(svc *services.LifecycleService) fiber.Handler {
	return transition(model.StatusNewHire, func(c *fiber.Ctx, id string) (*model.Candidate, error) {
		return svc.ApproveForHire(c.Context(), id)
	})
}

// MarkAsEmployeeHandler moves new-hire → employee.
func MarkAsEmployeeHandler(svc *services.LifecycleService) fiber.Handler {
	return transition(model.StatusEmployee, func(c *fiber.Ctx, id string) (*model.Candidate, error) {
		return svc.MarkAsEmployee(c.Context(), id)
	})
}

// DeactivateHandler moves employee → inactive with a required reason.
func DeactivateHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DeactivateDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		out, err := svc.Deactivate(c.Context(), c.Params("id"), body.Reason, body.Detail)
		if err != nil {
			return failJSON(c, err)
		}
		prometheus.RecordTransition(string(model.StatusInactive))
		return c.JSON(dto.OKWithID(out.ID))
	}
}

// RejectHandler godoc
// @Summary      Reject and hard-delete a candidate
// @Description  Valid only while the record is in the candidate or interview phase. The record is removed entirely; blob attachments are not cleaned up.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ResultResponse
// @Failure      409  {object}  dto.ResultResponse
// @Router       /candidates/{id} [delete]
func RejectHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Reject(c.Context(), c.Params("id")); err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OK())
	}
}

// AttachReviewHandler stores the interview review without advancing status.
func AttachReviewHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ReviewDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		out, err := svc.AttachReview(c.Context(), c.Params("id"), model.InterviewReview{
			Reviewer: body.Reviewer,
			Ratings:  body.Ratings,
			Notes:    body.Notes,
		})
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OKWithID(out.ID))
	}
}
