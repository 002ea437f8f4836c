package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse renders the shared error envelope. Only sentinel error text
// reaches the client; internal detail stays in the logs.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	resp := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	return c.Status(statusCode).JSON(resp)
}
