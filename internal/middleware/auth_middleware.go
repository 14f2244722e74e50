package middleware

import (
	"strings"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT and sets actor info in the request context.
// The role is re-read from the user record on every request so a role change
// takes effect immediately, not when the token expires.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_name", user.FullName)
		c.Locals("user_role", string(user.Role))

		return c.Next()
	}
}

// RequireCapability pre-gates a route against the role capability table.
// This is UX-level filtering only: the services repeat the same check, so a
// caller bypassing the route guard still gets a permission error.
func RequireCapability(cap model.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleCode, ok := c.Locals("user_role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		if !model.Role(roleCode).Can(cap) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + string(cap) + "' capability",
			})
		}
		return c.Next()
	}
}
