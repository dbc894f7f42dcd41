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
	database "assurance_backend/internals/databases"
	"assurance_backend/internals/databases/dbtest"
	"assurance_backend/internals/features/students/controller"
	"assurance_backend/internals/features/students/route"
	helper "assurance_backend/internals/helpers"
	helperAuth "assurance_backend/internals/helpers/auth"
	authMw "assurance_backend/internals/middlewares/auth"
)

const secret = "student-route-secret"

type envelope struct {
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newApp(store *database.Store) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", authMw.AuthMiddleware(authMw.AuthOpts{Secret: secret}))
	route.StudentRoutes(api, controller.NewStudentController(store, helper.NewValidator()))
	return app
}

func do(t *testing.T, app *fiber.App, role constants.AccountType, method, path, body string) (int, envelope) {
	t.Helper()
	token, _, err := helperAuth.IssueToken(secret, "test", time.Hour, helperAuth.Claims{
		ID: 1, Email: "user@school.test", AccountType: role,
	})
	if err != nil {
		t.Fatal(err)
	}
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api"+path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestAccountantCannotDeleteStudent(t *testing.T) {
	store := dbtest.Open(t)
	app := newApp(store)

	status, env := do(t, app, constants.AccountAdministrator, "POST", "/students", `{"student_id":"STU001","full_name":"Ama Mensah"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create: %d %q", status, env.ErrorCode)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(env.Data, &created)
	path := "/students/" + strconv.FormatInt(created.ID, 10)

	status, env = do(t, app, constants.AccountAccountant, "DELETE", path, "")
	if status != fiber.StatusForbidden || env.ErrorCode != helper.CodeForbidden {
		t.Fatalf("expected 403 FORBIDDEN, got %d %q", status, env.ErrorCode)
	}

	var n int64
	if err := store.DB.Table("students").Where("id = ?", created.ID).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("student row must survive, found %d", n)
	}

	if status, _ = do(t, app, constants.AccountAccountant, "GET", path, ""); status != fiber.StatusOK {
		t.Fatalf("accountant read: %d", status)
	}
	if status, _ = do(t, app, constants.AccountAdministrator, "DELETE", path, ""); status != fiber.StatusOK {
		t.Fatalf("admin delete: %d", status)
	}
}
