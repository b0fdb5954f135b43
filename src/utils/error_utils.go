// error_utils.go
package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/models"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
	})
}

// HandleValidationError returns a 400 echoing per-field messages so the form
// can highlight the offending inputs.
func HandleValidationError(c *fiber.Ctx, details map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error:   "validation failed",
		Details: details,
	})
}
