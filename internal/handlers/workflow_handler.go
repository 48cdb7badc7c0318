package handlers

import (
	"github.com/gofiber/fiber/v2"

	"onboard_panel/dto"
	"onboard_panel/model"
	"onboard_panel/services"
)

// AddProcessHandler godoc
// @Summary      Append an onboarding process to a company
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string             true  "Company id"
// @Param        data       body  dto.AddProcessDTO  true  "Process name (optional)"
// @Success      201  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ResultResponse
// @Router       /companies/{companyId}/processes [post]
func AddProcessHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddProcessDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.AddProcess(c.Context(), c.Params("companyId"), body.Name)
		if err != nil {
			return failJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// AddGeneratedProcessHandler embeds externally generated field definitions
// as a new process with a custom application form.
func AddGeneratedProcessHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GeneratedProcessDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.AddGeneratedProcess(c.Context(), c.Params("companyId"), body.Name, body.Fields)
		if err != nil {
			return failJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// RemoveProcessHandler filters one process out of the company list.
func RemoveProcessHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.RemoveProcess(c.Context(), c.Params("companyId"), c.Params("processId"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// SetApplicationFormHandler swaps the application-form variant on one
// process.
func SetApplicationFormHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SetApplicationFormDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.SetApplicationForm(c.Context(), c.Params("companyId"), c.Params("processId"), body.Kind, body.Images, body.Fields)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// SetInterviewScreenHandler swaps the interview-screen variant.
func SetInterviewScreenHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SetInterviewScreenDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.SetInterviewScreen(c.Context(), c.Params("companyId"), c.Params("processId"), body.Kind, body.ImageURL)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// AddRequiredDocHandler appends a required document; duplicate ids are
// ignored.
func AddRequiredDocHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RequiredDocDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.AddRequiredDoc(c.Context(), c.Params("companyId"), c.Params("processId"), model.RequiredDoc{
			ID:    body.ID,
			Label: body.Label,
			Type:  body.Type,
		})
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// RemoveRequiredDocHandler filters a required document out; removing an
// absent id succeeds.
func RemoveRequiredDocHandler(svc *services.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.RemoveRequiredDoc(c.Context(), c.Params("companyId"), c.Params("processId"), c.Params("docId"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}
