package handlers

import (
	"github.com/gofiber/fiber/v2"

	"onboard_panel/dto"
	"onboard_panel/services"
)

// LoginHandler godoc
// @Summary      Authenticate an admin and issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ResultResponse
// @Failure      404   {object}  dto.ResultResponse
// @Router       /auth/login [post]
func LoginHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		token, user, err := svc.Login(c.Context(), body.Email, body.Password)
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.LoginResponse{Success: true, Token: token, User: user})
	}
}

// CreateAdminHandler provisions an admin identity plus profile. Superuser
// only.
func CreateAdminHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateAdminDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		user, err := svc.CreateAdmin(c.Context(), services.NewAdmin{
			Email:             body.Email,
			Password:          body.Password,
			CompanyID:         body.CompanyID,
			SubscriptionStart: body.SubscriptionStart,
			SubscriptionEnd:   body.SubscriptionEnd,
		})
		if err != nil {
			return failJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.OKWithID(user.UID))
	}
}

// DeleteAdminHandler removes identity and profile. Superuser only.
func DeleteAdminHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteAdmin(c.Context(), c.Params("uid")); err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OK())
	}
}

// ElevateHandler grants the superuser flag. Superuser only.
func ElevateHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Elevate(c.Context(), c.Params("uid"))
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OKWithID(user.UID))
	}
}

// ListAdminsHandler lists every admin profile. Superuser only.
func ListAdminsHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.List(c.Context())
		if err != nil {
			return failJSON(c, err)
		}
		return c.JSON(out)
	}
}

// ResetDemoDataHandler wipes every candidate record. Superuser only.
func ResetDemoDataHandler(svc *services.LifecycleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.ResetDemoData(c.Context()); err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OK())
	}
}

// DeleteAllCompaniesHandler wipes every tenant. Superuser only.
func DeleteAllCompaniesHandler(svc *services.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteAll(c.Context()); err != nil {
			return failJSON(c, err)
		}
		return c.JSON(dto.OK())
	}
}
