// file: internals/features/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/staff/controller"
	authMw "assurance_backend/internals/middlewares/auth"
)

// StaffRoutes mounts /staff and /subjects on an authenticated router.
func StaffRoutes(api fiber.Router, ctl *controller.StaffController) {
	admin := authMw.IsAdministrator()

	g := api.Group("/staff")

	// literal paths first so /attendance never reaches /:id
	g.Get("/attendance", ctl.ListAttendance)
	g.Post("/attendance", admin, ctl.MarkAttendance)

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", admin, ctl.Create)
	g.Put("/:id", admin, ctl.Update)
	g.Delete("/:id", admin, ctl.Delete)

	g.Post("/:id/subjects", admin, ctl.AssignSubject)
	g.Delete("/:staffId/subjects/:subjectId", admin, ctl.UnassignSubject)

	subjects := api.Group("/subjects")
	subjects.Get("/", ctl.ListSubjects)
	subjects.Post("/", admin, ctl.CreateSubject)
}
