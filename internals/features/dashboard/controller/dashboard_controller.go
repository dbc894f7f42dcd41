package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/dashboard/dto"
	"assurance_backend/internals/features/dashboard/repository"
	staffRepo "assurance_backend/internals/features/staff/repository"
	helper "assurance_backend/internals/helpers"
)

type DashboardController struct {
	Store *database.Store
	Now   func() time.Time
}

func NewDashboardController(store *database.Store) *DashboardController {
	return &DashboardController{Store: store, Now: time.Now}
}

// GET /api/dashboard/stats
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	db := dc.Store.Conn(c.UserContext())
	now := dc.Now()

	var (
		out dto.StatsResponse
		err error
	)
	fail := func(err error) error {
		return helper.WritePGError(c, err, "", "Not found")
	}

	if out.TotalStudents, err = repository.CountActive(db, "students"); err != nil {
		return fail(err)
	}
	if out.TotalStaff, err = repository.CountActive(db, "staff"); err != nil {
		return fail(err)
	}
	if out.MonthlyRevenue, err = repository.RevenueForMonth(db, now); err != nil {
		return fail(err)
	}
	if out.PendingBalances, err = repository.PendingBalances(db); err != nil {
		return fail(err)
	}
	if out.EnrollmentDistribution, err = repository.EnrollmentDistribution(db); err != nil {
		return fail(err)
	}

	summary, err := staffRepo.AttendanceSummary(db, now)
	if err != nil {
		return fail(err)
	}
	out.AttendanceToday = make(map[string]int64, len(summary))
	for status, n := range summary {
		out.AttendanceToday[string(status)] = n
	}

	return helper.JsonOK(c, "ok", out)
}
