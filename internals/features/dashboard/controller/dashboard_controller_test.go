package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/databases/dbtest"
	"assurance_backend/internals/features/dashboard/controller"
	"assurance_backend/internals/features/dashboard/dto"
)

func TestDashboardStats(t *testing.T) {
	store := dbtest.Open(t)
	db := store.DB

	dbtest.Exec(t, db, `INSERT INTO users (full_name, email, password, school_name, account_type)
		VALUES ('Kofi', 'kofi@school.test', 'x', 'Assurance', 'Accountant')`)
	dbtest.Exec(t, db, `INSERT INTO students (student_id, full_name, enrollment_category, status) VALUES
		('S1', 'Ama', 'MayJune', 'Active'),
		('S2', 'Kwame', 'MayJune', 'Active'),
		('S3', 'Efua', 'NovDec', 'Active'),
		('S4', 'Yaw', 'NovDec', 'Graduated')`)
	dbtest.Exec(t, db, `INSERT INTO staff (staff_id, full_name, email, status) VALUES
		('T1', 'Abena', 'abena@school.test', 'Active'),
		('T2', 'Kojo', 'kojo@school.test', 'On Leave')`)
	dbtest.Exec(t, db, `INSERT INTO fee_structure (student_id, total_fees, amount_paid, balance, academic_year, term)
		SELECT id, 500, 200, 300, '2024', 'Term1' FROM students WHERE student_id = 'S1'`)
	dbtest.Exec(t, db, `INSERT INTO fee_structure (student_id, total_fees, amount_paid, balance, academic_year, term)
		SELECT id, 100, 150, -50, '2024', 'Term1' FROM students WHERE student_id = 'S2'`)
	dbtest.Exec(t, db, `INSERT INTO fees (student_id, amount, payment_date, payment_method, receipt_number, academic_year, term, recorded_by)
		SELECT s.id, 200, '2024-09-10', 'Cash', 'R1', '2024', 'Term1', u.id FROM students s, users u WHERE s.student_id = 'S1'`)
	dbtest.Exec(t, db, `INSERT INTO fees (student_id, amount, payment_date, payment_method, receipt_number, academic_year, term, recorded_by)
		SELECT s.id, 150, '2024-08-31', 'Cash', 'R2', '2024', 'Term1', u.id FROM students s, users u WHERE s.student_id = 'S2'`)
	dbtest.Exec(t, db, `INSERT INTO staff_attendance (staff_id, attendance_date, status)
		SELECT id, '2024-09-15', 'Present' FROM staff WHERE staff_id = 'T1'`)

	ctl := controller.NewDashboardController(store)
	ctl.Now = func() time.Time { return time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC) }

	app := fiber.New()
	app.Get("/stats", ctl.Stats)
	resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var env struct {
		Data dto.StatsResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	s := env.Data
	if s.TotalStudents != 3 || s.TotalStaff != 1 {
		t.Fatalf("totals: %+v", s)
	}
	if s.MonthlyRevenue.String() != "200" {
		t.Fatalf("monthly revenue %s", s.MonthlyRevenue)
	}
	if s.PendingBalances.String() != "300" {
		t.Fatalf("pending balances %s", s.PendingBalances)
	}
	if len(s.EnrollmentDistribution) != 2 || s.EnrollmentDistribution[0].Count != 2 {
		t.Fatalf("distribution %+v", s.EnrollmentDistribution)
	}
	if s.AttendanceToday["Present"] != 1 {
		t.Fatalf("attendance %+v", s.AttendanceToday)
	}
}
