package middlewares

import (
	"os"

	"qxmr/helpers"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the admin routes with a shared key. When ADMIN_KEY is
// unset the check is disabled, matching deployments where the admin surface
// sits behind its own origin.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := os.Getenv("ADMIN_KEY")
		if key == "" {
			return c.Next()
		}

		if c.Get("X-Admin-Key") != key {
			return helpers.JSONUnauthorized(c, "INVALID_ADMIN_KEY")
		}

		return c.Next()
	}
}
