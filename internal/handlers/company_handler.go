package handlers

import (
	"github.com/gofiber/fiber/v2"

	"onboard_panel/dto"
	"onboard_panel/services"
)

// SaveCompanyHandler godoc
// @Summary      Create or merge-update the company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CompanyDTO  true  "Partial company profile"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ResultResponse
// @Failure      404   {object}  dto.ResultResponse
// @Router       /companies [post]
func SaveCompanyHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CompanyDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		company, err := svc.CreateOrUpdate(c.Context(), services.CompanyUpdate{
			ID:      body.ID,
			Name:    body.Name,
			Address: body.Address,
			Phone:   body.Phone,
			Fax:     body.Fax,
			Email:   body.Email,
		})
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// GetCompanyHandler returns one company document.
func GetCompanyHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(company)
	}
}

// ListCompaniesHandler returns all companies in store order.
func ListCompaniesHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.List(c.Context())
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(out)
	}
}

// DeleteCompanyHandler removes the tenant document. Blob attachments stay
// behind; cleaning them up is an admin task.
func DeleteCompanyHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OK())
	}
}

// ActiveApplicationHandler godoc
// @Summary      Resolve what the public application page renders
// @Description  The first company in list order is the active tenant. With zero processes the default template form is active; otherwise the first process drives the link target.
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.ActiveApplicationResponse
// @Router       /application/active [get]
func ActiveApplicationHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.Active(c.Context())
		if err != nil {
			return failJSON(c, err)
		}
		if company == nil || len(company.OnboardingProcesses) == 0 {
			resp := dto.ActiveApplicationResponse{Default: true}
			if company != nil {
				resp.CompanyName = company.Name
				resp.LogoURL = company.LogoURL
			}
			return c.JSON(resp)
		}
		return c.JSON(dto.ActiveApplicationResponse{
			CompanyName: company.Name,
			LogoURL:     company.LogoURL,
			Default:     false,
			Process:     &company.OnboardingProcesses[0],
		})
	}
}

// UploadLogoHandler replaces the company logo; the previous blob is
// deleted best-effort.
func UploadLogoHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, closeFile, err := openPart(c, "file")
		if err != nil || file == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("missing file part"))
		}
		defer closeFile()

		company, err := svc.SetLogo(c.Context(), c.Params("id"), file)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}

// DeleteLogoHandler clears the logo locator.
func DeleteLogoHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.RemoveLogo(c.Context(), c.Params("id"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.CompanyResponse{Success: true, Company: company})
	}
}
