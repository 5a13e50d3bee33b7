// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// isPublicPath: the catalog surface is identical for every user and needs no
// user context. Everything else is per-user.
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/catalog") || path == "/staff/catalog"
}

// UserContextMiddleware extracts the external user id from the X-User-ID
// header and stores it in locals. The group mount matches every path, so for
// safety we guard here: public catalog paths pass through, everything else is
// rejected without the header.
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isPublicPath(c.Path()) {
			return c.Next()
		}
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing X-User-ID header",
			})
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
