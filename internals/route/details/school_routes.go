package details

import (
	"github.com/gofiber/fiber/v2"

	dashboardController "assurance_backend/internals/features/dashboard/controller"
	dashboardRoute "assurance_backend/internals/features/dashboard/route"
	staffController "assurance_backend/internals/features/staff/controller"
	staffRoute "assurance_backend/internals/features/staff/route"
	studentController "assurance_backend/internals/features/students/controller"
	studentRoute "assurance_backend/internals/features/students/route"
)

// SchoolRoutes: students, staff (+subjects, attendance) and the dashboard.
func SchoolRoutes(protected fiber.Router, deps Deps) {
	studentRoute.StudentRoutes(protected, studentController.NewStudentController(deps.Store, deps.Validate))
	staffRoute.StaffRoutes(protected, staffController.NewStaffController(deps.Store, deps.Validate))
	dashboardRoute.DashboardRoutes(protected, dashboardController.NewDashboardController(deps.Store))
}
