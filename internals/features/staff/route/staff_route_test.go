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
	"assurance_backend/internals/features/staff/controller"
	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/route"
	helper "assurance_backend/internals/helpers"
	helperAuth "assurance_backend/internals/helpers/auth"
	authMw "assurance_backend/internals/middlewares/auth"
)

const secret = "staff-test-secret"

type envelope struct {
	Success   bool                `json:"success"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newClient(t *testing.T, role constants.AccountType) *client {
	store := dbtest.Open(t)
	app := fiber.New()
	api := app.Group("/api", authMw.AuthMiddleware(authMw.AuthOpts{Secret: secret}))
	route.StaffRoutes(api, controller.NewStaffController(store, helper.NewValidator()))

	token, _, err := helperAuth.IssueToken(secret, "test", time.Hour, helperAuth.Claims{
		ID: 1, Email: "admin@school.test", AccountType: role,
	})
	if err != nil {
		t.Fatal(err)
	}
	return &client{t: t, app: app, token: token}
}

func (cl *client) do(method, path, body string) (int, envelope) {
	cl.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api"+path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cl.token)
	resp, err := cl.app.Test(req, -1)
	if err != nil {
		cl.t.Fatalf("%s %s: %v", method, path, err)
	}
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func (cl *client) createStaff(body string) dto.StaffResponse {
	cl.t.Helper()
	status, env := cl.do("POST", "/staff", body)
	if status != fiber.StatusCreated {
		cl.t.Fatalf("create staff: %d %s %v", status, env.ErrorCode, env.Errors)
	}
	var s dto.StaffResponse
	_ = json.Unmarshal(env.Data, &s)
	return s
}

func id(n int64) string { return strconv.FormatInt(n, 10) }

func TestStaffDuplicatesAndSubjects(t *testing.T) {
	cl := newClient(t, constants.AccountAdministrator)

	s := cl.createStaff(`{"staff_id":"STF001","full_name":"Abena Osei","email":"Abena@School.test","status":"On Leave"}`)
	if s.Email != "abena@school.test" || s.Status != "On Leave" {
		t.Fatalf("unexpected staff %+v", s)
	}

	status, env := cl.do("POST", "/staff", `{"staff_id":"STF002","full_name":"Other","email":"abena@school.test"}`)
	if status != fiber.StatusBadRequest || env.ErrorCode != helper.CodeDuplicate {
		t.Fatalf("duplicate email: %d %q", status, env.ErrorCode)
	}

	status, env = cl.do("POST", "/subjects", `{"subject_name":"Mathematics","subject_code":"math101"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create subject: %d %s", status, env.ErrorCode)
	}
	var subj dto.SubjectResponse
	_ = json.Unmarshal(env.Data, &subj)
	if subj.SubjectCode != "MATH101" {
		t.Fatalf("code not normalized: %q", subj.SubjectCode)
	}
	if status, env = cl.do("POST", "/subjects", `{"subject_name":"Maths again","subject_code":"MATH101"}`); status != fiber.StatusBadRequest || env.ErrorCode != helper.CodeDuplicate {
		t.Fatalf("duplicate subject: %d %q", status, env.ErrorCode)
	}

	assign := `{"subject_id":` + id(subj.ID) + `}`
	if status, _ = cl.do("POST", "/staff/"+id(s.ID)+"/subjects", assign); status != fiber.StatusCreated {
		t.Fatalf("assign: %d", status)
	}
	if status, env = cl.do("POST", "/staff/"+id(s.ID)+"/subjects", assign); status != fiber.StatusBadRequest || env.ErrorCode != helper.CodeDuplicate {
		t.Fatalf("duplicate assignment: %d %q", status, env.ErrorCode)
	}
	if status, _ = cl.do("POST", "/staff/999999/subjects", assign); status != fiber.StatusNotFound {
		t.Fatalf("assign to missing staff: %d", status)
	}

	status, env = cl.do("GET", "/staff/"+id(s.ID), "")
	if status != fiber.StatusOK {
		t.Fatalf("get: %d", status)
	}
	var detail dto.StaffDetailResponse
	_ = json.Unmarshal(env.Data, &detail)
	if len(detail.Subjects) != 1 || detail.Subjects[0].SubjectCode != "MATH101" {
		t.Fatalf("subjects: %+v", detail.Subjects)
	}

	path := "/staff/" + id(s.ID) + "/subjects/" + id(subj.ID)
	if status, _ = cl.do("DELETE", path, ""); status != fiber.StatusOK {
		t.Fatalf("unassign: %d", status)
	}
	if status, env = cl.do("DELETE", path, ""); status != fiber.StatusNotFound || env.ErrorCode != helper.CodeNotFound {
		t.Fatalf("unassign twice: %d %q", status, env.ErrorCode)
	}
	status, env = cl.do("GET", "/staff/"+id(s.ID), "")
	if status != fiber.StatusOK {
		t.Fatalf("get after unassign: %d", status)
	}
	var raw map[string]json.RawMessage
	_ = json.Unmarshal(env.Data, &raw)
	if string(raw["subjects"]) != "[]" {
		t.Fatalf("expected empty subjects list, got %q", raw["subjects"])
	}
}

func TestAttendanceUpsertAndFilters(t *testing.T) {
	cl := newClient(t, constants.AccountAdministrator)
	a := cl.createStaff(`{"staff_id":"STF001","full_name":"Abena Osei","email":"abena@school.test"}`)
	b := cl.createStaff(`{"staff_id":"STF002","full_name":"Kojo Mensah","email":"kojo@school.test"}`)

	mark := func(staffID int64, date, status string) {
		t.Helper()
		body := `{"staff_id":` + id(staffID) + `,"attendance_date":"` + date + `","status":"` + status + `"}`
		if code, env := cl.do("POST", "/staff/attendance", body); code != fiber.StatusCreated {
			t.Fatalf("mark %s: %d %s %v", body, code, env.ErrorCode, env.Errors)
		}
	}
	mark(a.ID, "2024-09-02", "Present")
	mark(a.ID, "2024-09-02", "Late")
	mark(a.ID, "2024-09-03", "Present")
	mark(b.ID, "2024-09-02", "Absent")

	list := func(query string) []dto.AttendanceResponse {
		t.Helper()
		code, env := cl.do("GET", "/staff/attendance"+query, "")
		if code != fiber.StatusOK {
			t.Fatalf("list %s: %d %s", query, code, env.ErrorCode)
		}
		var rows []dto.AttendanceResponse
		_ = json.Unmarshal(env.Data, &rows)
		return rows
	}

	rows := list("?staff_id=" + id(a.ID) + "&date_from=2024-09-02&date_to=2024-09-02")
	if len(rows) != 1 || rows[0].Status != "Late" || rows[0].StaffName != "Abena Osei" {
		t.Fatalf("upsert should keep one row with latest status: %+v", rows)
	}
	if rows := list(""); len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows := list("?date_from=2024-09-03"); len(rows) != 1 {
		t.Fatalf("date_from: %+v", rows)
	}

	code, env := cl.do("GET", "/staff/attendance?date_from=02/09/2024", "")
	if code != fiber.StatusBadRequest || len(env.Errors["date_from"]) == 0 {
		t.Fatalf("bad date filter: %d %v", code, env.Errors)
	}
	if code, _ := cl.do("POST", "/staff/attendance", `{"staff_id":999999,"attendance_date":"2024-09-02","status":"Present"}`); code != fiber.StatusNotFound {
		t.Fatalf("missing staff: %d", code)
	}
}

func TestAccountantCannotMutateStaff(t *testing.T) {
	cl := newClient(t, constants.AccountAccountant)
	if code, _ := cl.do("POST", "/staff", `{"staff_id":"X","full_name":"Y","email":"y@school.test"}`); code != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if code, _ := cl.do("GET", "/staff", ""); code != fiber.StatusOK {
		t.Fatalf("read should be allowed, got %d", code)
	}
}
