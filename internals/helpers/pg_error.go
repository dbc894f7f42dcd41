package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 23505 unique_violation, 23503 foreign_key_violation
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique violation, optionally restricted to the
// named constraints.
func IsUniqueViolation(err error, constraints ...string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != pgUniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, name := range constraints {
		if pgErr.ConstraintName == name {
			return true
		}
	}
	return false
}

func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgForeignKeyViolation
}

// ViolatedConstraint returns the constraint name carried by a PG error, if any.
func ViolatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

// WritePGError maps store errors to the response envelope: unique -> 400
// DUPLICATE with duplicateMsg, FK -> 400, missing row -> 404, rest -> 500.
func WritePGError(c *fiber.Ctx, err error, duplicateMsg, notFoundMsg string) error {
	switch {
	case IsUniqueViolation(err):
		return JsonDuplicate(c, duplicateMsg)
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusBadRequest, "Referenced record not found")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return JsonError(c, fiber.StatusInternalServerError, "")
	}
}
