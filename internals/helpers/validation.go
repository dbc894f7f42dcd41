package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Enum is implemented by the closed string sets (account type, status, ...).
type Enum interface {
	Valid() bool
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// NewValidator returns a validator reporting JSON field names, with the
// extra rules used by the DTOs: enum, date (YYYY-MM-DD) and money.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// money fields validate as numbers: gt=0, gte=0, money
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Type().Implements(enumType) {
			return field.Interface().(Enum).Valid()
		}
		if field.CanAddr() && field.Addr().Type().Implements(enumType) {
			return field.Addr().Interface().(Enum).Valid()
		}
		return false
	})

	// decimals reach here as float64 through the custom type func above
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			return ValidMoney(decimal.NewFromFloat(field.Float()))
		}
		return false
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// ValidationErrors maps validator failures to field -> messages.
// ok is false when err is not a validation failure.
func ValidationErrors(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out, true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "enum":
		return "has an unsupported value"
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "money":
		return "must have at most 2 decimal places and be below 100,000,000"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

type normalizer interface {
	Normalize()
}

// BindJSON parses, normalizes and validates the request body into dst.
// When ok is false the error response has been written and resp must be returned.
func BindJSON(c *fiber.Ctx, v *validator.Validate, dst any) (ok bool, resp error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if n, isNormalizer := dst.(normalizer); isNormalizer {
		n.Normalize()
	}
	if err := v.Struct(dst); err != nil {
		if fields, isValidation := ValidationErrors(err); isValidation {
			return false, JsonValidationError(c, fields)
		}
		return false, JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return true, nil
}
