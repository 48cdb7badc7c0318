package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"onboard_panel/dto"
	"onboard_panel/internal/aiform"
)

// GenerateFormHandler godoc
// @Summary      Generate application form fields with the hosted model
// @Description  Proxies a generation request and returns the form name plus ordered field definitions. Nothing is persisted; the settings screen embeds the result as a new process in a separate call.
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      aiform.Request   true  "Desired form description"
// @Success      200   {object}  aiform.Response
// @Failure      400   {object}  dto.ResultResponse
// @Failure      502   {object}  dto.ResultResponse
// @Router       /ai/generate-form [post]
func GenerateFormHandler(client *aiform.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req aiform.Request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		if req.JobTitle == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("jobTitle is required"))
		}

		resp, err := client.Generate(c.Context(), req)
		if err != nil {
			zap.L().Error("form generation failed", zap.String("jobTitle", req.JobTitle), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(dto.Fail("form generation failed"))
		}
		return c.JSON(resp)
	}
}
