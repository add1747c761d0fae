package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// apiVersion is the current API contract version.
const apiVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context
// and echoes the served version on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", apiVersion)
		if version == "1.0" {
			version = "1.0.0"
		}
		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", apiVersion)

		return c.Next()
	}
}
