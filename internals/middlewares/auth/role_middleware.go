package auth

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/constants"
	helper "assurance_backend/internals/helpers"
)

// OnlyRoles lets the request through when the verified account type is one
// of roles. Must run after AuthMiddleware.
func OnlyRoles(customForbiddenMessage string, roles ...constants.AccountType) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role, ok := AccountTypeFrom(c)
		if !ok {
			return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenMissing, "Authentication required")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// IsAdministrator gates admin-only mutations.
func IsAdministrator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := AccountTypeFrom(c)
		if !ok {
			return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenMissing, "Authentication required")
		}
		if !role.IsAdministrator() {
			return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Administrator privileges required.")
		}
		return c.Next()
	}
}
