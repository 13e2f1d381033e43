package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/models"
)

// RequireRoles allows the request through only when the authenticated user's
// role is in the given set. Each route spells out its full allowed set; there
// is no hierarchy between roles. Must run after Protect.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	allowedSet := make(map[models.Role]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperr.New(fiber.StatusUnauthorized, "You are not logged in! Please log in to get access.")
		}

		if !allowedSet[user.Role] {
			return apperr.New(fiber.StatusForbidden, "You are not authorized to perform this action")
		}

		return c.Next()
	}
}
