package middleware

import (
	"strings"

	"artshop/internal/repositories"
	"artshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired checks for a valid bearer token and stores the resolved
// user ID in the request context. Missing or invalid credentials are an
// authentication failure (401), distinct from authorization (403).
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		c.Locals("user_id", userID)
		c.Locals("email", claims["email"])

		return c.Next()
	}
}

// AdminRequired resolves the authenticated user and rejects non-admins.
// Must run after AuthRequired.
func AdminRequired(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		user, err := userRepo.GetByID(userID)
		if err != nil || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied: admin only",
			})
		}
		return c.Next()
	}
}
