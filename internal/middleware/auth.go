package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/utils"
)

const userLocalsKey = "user"

// Protect resolves the bearer credential to a user row and stashes it in
// Locals. The Authorization header wins over the jwt cookie.
func Protect(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tokenStr string
		if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie := c.Cookies("jwt"); cookie != "" {
			tokenStr = cookie
		}

		if tokenStr == "" {
			return apperr.New(fiber.StatusUnauthorized, "You are not logged in! Please log in to get access.")
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return apperr.New(fiber.StatusUnauthorized, "Invalid or expired token. Please log in again.")
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			return apperr.New(fiber.StatusUnauthorized, "The user belonging to this token no longer exists.")
		}

		c.Locals(userLocalsKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by Protect, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}
