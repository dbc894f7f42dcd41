// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/constants"
	helperAuth "assurance_backend/internals/helpers/auth"
)

const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "userRole"
	LocalClaims    = "claims"
	LocalRawToken  = "raw_token"

	TokenCookie = "token"
)

var (
	errNoToken     = errors.New("no token provided")
	errTokenFormat = errors.New("invalid token format")
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx, cookieFallback bool) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if !cookieFallback {
			return "", errNoToken
		}
		tok := strings.TrimSpace(c.Cookies(TokenCookie))
		if tok == "" {
			return "", errNoToken
		}
		return tok, nil
	}

	// tolerate repeated spaces and any casing of "Bearer"
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errTokenFormat
	}
	tok := strings.Trim(fields[1], "\"'")
	if tok == "" {
		return "", errTokenFormat
	}
	return tok, nil
}

// RawToken returns the presented token even on public routes (logout).
func RawToken(c *fiber.Ctx) string {
	tok, err := extractBearerToken(c, true)
	if err != nil {
		return ""
	}
	return tok
}

/* ======== Locals ======== */

func storeClaimsToLocals(c *fiber.Ctx, claims *helperAuth.Claims, raw string) {
	c.Locals(LocalUserID, claims.ID)
	c.Locals(LocalUserEmail, claims.Email)
	c.Locals(LocalUserRole, claims.AccountType)
	c.Locals(LocalClaims, claims)
	c.Locals(LocalRawToken, raw)
}

func ClaimsFrom(c *fiber.Ctx) (*helperAuth.Claims, bool) {
	claims, ok := c.Locals(LocalClaims).(*helperAuth.Claims)
	return claims, ok && claims != nil
}

func UserIDFrom(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalUserID).(int64)
	return id, ok && id > 0
}

func AccountTypeFrom(c *fiber.Ctx) (constants.AccountType, bool) {
	role, ok := c.Locals(LocalUserRole).(constants.AccountType)
	return role, ok && role.Valid()
}
