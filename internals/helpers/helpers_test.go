package helper

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type testStatus string

func (s testStatus) Valid() bool { return s == "Active" || s == "Inactive" }

type testPayload struct {
	Name   string          `json:"name" validate:"required,min=2"`
	Email  string          `json:"email" validate:"omitempty,email"`
	Status testStatus      `json:"status" validate:"required,enum"`
	Date   string          `json:"date" validate:"required,date"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Struct(testPayload{
		Name:   "A",
		Email:  "nope",
		Status: "Deleted",
		Date:   "12/01/2024",
		Amount: decimal.Zero,
	})
	fields, ok := ValidationErrors(err)
	if !ok {
		t.Fatalf("expected validation errors, got %v", err)
	}
	for _, f := range []string{"name", "email", "status", "date", "amount"} {
		if len(fields[f]) == 0 {
			t.Fatalf("expected error for %s, got %v", f, fields)
		}
	}
}

func TestValidationPasses(t *testing.T) {
	v := NewValidator()
	err := v.Struct(testPayload{
		Name:   "Ama",
		Status: "Active",
		Date:   "2024-09-01",
		Amount: decimal.RequireFromString("150.50"),
	})
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestMoneyRule(t *testing.T) {
	type payload struct {
		Amount decimal.Decimal `json:"amount" validate:"gt=0,money"`
	}
	v := NewValidator()
	cases := []struct {
		amount string
		ok     bool
	}{
		{"150.50", true},
		{"0.01", true},
		{"99999999.99", true},
		{"0.001", false},
		{"100.125", false},
		{"123456789.99", false},
		{"100000000", false},
	}
	for _, tc := range cases {
		err := v.Struct(payload{Amount: decimal.RequireFromString(tc.amount)})
		if tc.ok && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.amount, err)
		}
		if !tc.ok {
			fields, ok := ValidationErrors(err)
			if !ok || len(fields["amount"]) == 0 {
				t.Fatalf("%s: expected amount error, got %v", tc.amount, err)
			}
		}
	}
}

func TestValidMoney(t *testing.T) {
	if !ValidMoney(decimal.RequireFromString("100.100")) {
		t.Fatal("trailing zeros fit two decimals")
	}
	if ValidMoney(decimal.RequireFromString("-0.005")) {
		t.Fatal("three decimals must not fit")
	}
}

func TestValidationErrorsIgnoresOtherErrors(t *testing.T) {
	if _, ok := ValidationErrors(errors.New("boom")); ok {
		t.Fatal("plain error must not be treated as validation error")
	}
}

func TestPGErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "students_student_id_key"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) {
		t.Fatal("expected unique violation")
	}
	if !IsUniqueViolation(unique, "students_student_id_key") {
		t.Fatal("expected named unique violation")
	}
	if IsUniqueViolation(unique, "fees_receipt_number_key") {
		t.Fatal("constraint filter ignored")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(unique) {
		t.Fatal("fk classification wrong")
	}
	if IsUniqueViolation(errors.New("plain")) {
		t.Fatal("plain error classified as unique violation")
	}
}

func TestEscapeLike(t *testing.T) {
	if got := ContainsPattern(" 50%_off\\ "); got != `%50\%\_off\\%` {
		t.Fatalf("unexpected pattern %q", got)
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p, ok := ResolvePaging(c, 20, 100)
		if !ok {
			return c.SendString("none")
		}
		return c.SendString(fmt.Sprintf("%d/%d/%d", p.Page, p.PerPage, p.Offset))
	})

	cases := map[string]string{
		"/":                       "none",
		"/?page=2":                "2/20/20",
		"/?page=3&per_page=500":   "3/100/200",
		"/?limit=5":               "1/5/0",
		"/?page=-1&per_page=abc":  "1/20/0",
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		if err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != want {
			t.Fatalf("%s: got %q want %q", url, body, want)
		}
	}
}

func TestJsonErrorHidesServerDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusInternalServerError, "pq: relation users does not exist")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 500 || strings.Contains(string(body), "relation") {
		t.Fatalf("leaked detail: %d %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), CodeInternal) {
		t.Fatalf("expected %s in %s", CodeInternal, body)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Fatalf("round trip mismatch: %s", FormatDate(d))
	}
	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Fatal("expected invalid date")
	}
	if p, err := ParseDatePtr(nil); p != nil || err != nil {
		t.Fatal("nil date pointer should parse to nil")
	}
}
