// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "assurance_backend/internals/helpers"
	helperAuth "assurance_backend/internals/helpers/auth"
)

// RevocationChecker reports whether a raw token was revoked (logout).
type RevocationChecker func(ctx context.Context, rawToken string) (bool, error)

type AuthOpts struct {
	Secret string
	// IsRevoked may be nil (no blacklist).
	IsRevoked RevocationChecker
	// AllowCookieFallback reads the "token" cookie when no Authorization header is sent.
	AllowCookieFallback bool
}

// AuthMiddleware verifies the access token and stores its claims in Locals.
// Missing, invalid, expired and revoked tokens are distinct 401s.
func AuthMiddleware(opts AuthOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c, opts.AllowCookieFallback)
		if err != nil {
			if errors.Is(err, errNoToken) {
				return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenMissing, "Authentication required")
			}
			return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenInvalid, "Invalid token format")
		}

		if opts.Secret == "" {
			log.Println("[ERROR] JWT secret is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "")
		}

		claims, err := helperAuth.ParseToken(opts.Secret, raw)
		if err != nil {
			if errors.Is(err, helperAuth.ErrTokenExpired) {
				return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenExpired, "Token expired")
			}
			log.Printf("[WARN] rejected token: %v", err)
			return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenInvalid, "Invalid token")
		}

		if opts.IsRevoked != nil {
			revoked, err := opts.IsRevoked(c.UserContext(), raw)
			if err != nil {
				log.Printf("[ERROR] blacklist check: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "")
			}
			if revoked {
				return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenRevoked, "Token has been revoked")
			}
		}

		storeClaimsToLocals(c, claims, raw)
		return c.Next()
	}
}
