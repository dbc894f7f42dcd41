package route_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/constants"
	"assurance_backend/internals/databases/dbtest"
	"assurance_backend/internals/features/finance/fees/controller"
	"assurance_backend/internals/features/finance/fees/dto"
	"assurance_backend/internals/features/finance/fees/route"
	helper "assurance_backend/internals/helpers"
	helperAuth "assurance_backend/internals/helpers/auth"
	authMw "assurance_backend/internals/middlewares/auth"
)

const secret = "fees-test-secret"

type envelope struct {
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

type harness struct {
	t          *testing.T
	app        *fiber.App
	admin      string
	accountant string
	studentID  int64
}

func newHarness(t *testing.T) *harness {
	store := dbtest.Open(t)
	dbtest.Exec(t, store.DB, `INSERT INTO users (full_name, email, password, school_name, account_type, is_verified)
		VALUES ('Kofi Boateng', 'kofi@school.test', 'x', 'Assurance', 'Administrator', TRUE)`)
	dbtest.Exec(t, store.DB, `INSERT INTO students (student_id, full_name, enrollment_category) VALUES ('STU001', 'Ama Mensah', 'MayJune')`)

	var ids struct {
		UserID    int64
		StudentID int64
	}
	if err := store.DB.Raw(`SELECT (SELECT id FROM users LIMIT 1) AS user_id, (SELECT id FROM students LIMIT 1) AS student_id`).
		Scan(&ids).Error; err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	api := app.Group("/api", authMw.AuthMiddleware(authMw.AuthOpts{Secret: secret}))
	route.FeeRoutes(api, controller.NewFeeController(store, helper.NewValidator()))

	issue := func(role constants.AccountType) string {
		tok, _, err := helperAuth.IssueToken(secret, "test", time.Hour, helperAuth.Claims{
			ID: ids.UserID, Email: "kofi@school.test", AccountType: role,
		})
		if err != nil {
			t.Fatal(err)
		}
		return tok
	}
	return &harness{
		t:          t,
		app:        app,
		admin:      issue(constants.AccountAdministrator),
		accountant: issue(constants.AccountAccountant),
		studentID:  ids.StudentID,
	}
}

func (h *harness) do(token, method, path, body string) (*httptestResponse, envelope) {
	h.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api"+path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := h.app.Test(req, -1)
	if err != nil {
		h.t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return &httptestResponse{status: resp.StatusCode, contentType: resp.Header.Get("Content-Type"), body: raw}, env
}

type httptestResponse struct {
	status      int
	contentType string
	body        []byte
}

func (h *harness) paymentBody(amount string) string {
	return `{"student_id":` + strconv.FormatInt(h.studentID, 10) +
		`,"amount":` + amount +
		`,"payment_date":"2024-09-02","payment_method":"Mobile Money","academic_year":"2024","term":"Term1"}`
}

func TestPaymentFlowOverHTTP(t *testing.T) {
	h := newHarness(t)

	resp, env := h.do(h.accountant, "POST", "/fees", h.paymentBody("150"))
	if resp.status != fiber.StatusConflict || env.ErrorCode != helper.CodeFeeStructureMissing {
		t.Fatalf("expected 409 FEE_STRUCTURE_MISSING, got %d %q", resp.status, env.ErrorCode)
	}

	structure := `{"student_id":` + strconv.FormatInt(h.studentID, 10) + `,"total_fees":500,"academic_year":"2024","term":"Term1"}`
	if resp, _ = h.do(h.accountant, "POST", "/fees/structure", structure); resp.status != fiber.StatusForbidden {
		t.Fatalf("accountant must not set structures, got %d", resp.status)
	}
	if resp, env = h.do(h.admin, "POST", "/fees/structure", structure); resp.status != fiber.StatusCreated {
		t.Fatalf("set structure: %d %q", resp.status, env.ErrorCode)
	}

	resp, env = h.do(h.accountant, "POST", "/fees", h.paymentBody("150.50"))
	if resp.status != fiber.StatusCreated {
		t.Fatalf("record: %d %q", resp.status, env.ErrorCode)
	}
	var rec dto.RecordPaymentResponse
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Structure.Balance.String() != "349.5" {
		t.Fatalf("balance after payment: %s", rec.Structure.Balance)
	}

	resp, env = h.do(h.accountant, "GET", "/fees/receipt/"+rec.ReceiptNumber, "")
	if resp.status != fiber.StatusOK {
		t.Fatalf("receipt: %d", resp.status)
	}
	var receipt dto.ReceiptResponse
	_ = json.Unmarshal(env.Data, &receipt)
	if receipt.StudentName != "Ama Mensah" || receipt.RecordedByName != "Kofi Boateng" || !strings.Contains(receipt.AmountInWords, "fifty pesewas") {
		t.Fatalf("unexpected receipt %+v", receipt)
	}

	if resp, _ = h.do(h.accountant, "GET", "/fees/receipt/"+rec.ReceiptNumber+"/pdf", ""); resp.status != fiber.StatusOK || !strings.HasPrefix(string(resp.body), "%PDF") {
		t.Fatalf("pdf: %d %s", resp.status, resp.contentType)
	}
	if resp, env = h.do(h.accountant, "GET", "/fees/receipt/REC-NOPE", ""); resp.status != fiber.StatusNotFound || env.ErrorCode != helper.CodeNotFound {
		t.Fatalf("missing receipt: %d %q", resp.status, env.ErrorCode)
	}

	resp, env = h.do(h.accountant, "GET", "/fees/balance/"+strconv.FormatInt(h.studentID, 10)+"?academic_year=2024&term=Term1", "")
	var bal dto.StructureResponse
	_ = json.Unmarshal(env.Data, &bal)
	if resp.status != fiber.StatusOK || !bal.Exists || bal.AmountPaid.String() != "150.5" {
		t.Fatalf("balance: %d %+v", resp.status, bal)
	}

	if resp, _ = h.do(h.accountant, "GET", "/fees/export", ""); resp.status != fiber.StatusForbidden {
		t.Fatalf("accountant export: %d", resp.status)
	}
	if resp, _ = h.do(h.admin, "GET", "/fees/export?academic_year=2024", ""); resp.status != fiber.StatusOK || !strings.Contains(resp.contentType, "spreadsheetml") {
		t.Fatalf("admin export: %d %s", resp.status, resp.contentType)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	h := newHarness(t)
	resp, env := h.do(h.accountant, "POST", "/fees", `{"student_id":1,"amount":0,"payment_date":"2024/09/02","payment_method":"Gold"}`)
	if resp.status != fiber.StatusBadRequest || env.ErrorCode != helper.CodeValidation {
		t.Fatalf("expected validation error, got %d %q", resp.status, env.ErrorCode)
	}
	for _, amount := range []string{"0.001", "100.125", "123456789.99"} {
		body := `{"student_id":1,"amount":` + amount + `,"payment_date":"2024-09-02","payment_method":"Cash","academic_year":"2024/2025","term":"Term 1"}`
		resp, env := h.do(h.accountant, "POST", "/fees", body)
		if resp.status != fiber.StatusBadRequest || env.ErrorCode != helper.CodeValidation {
			t.Fatalf("amount %s: expected validation error, got %d %q", amount, resp.status, env.ErrorCode)
		}
		if len(env.Errors["amount"]) == 0 {
			t.Fatalf("amount %s: expected field error on amount, got %v", amount, env.Errors)
		}
	}
}
