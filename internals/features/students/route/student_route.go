// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/students/controller"
	authMw "assurance_backend/internals/middlewares/auth"
)

// StudentRoutes expects api to already sit behind AuthMiddleware.
func StudentRoutes(api fiber.Router, ctl *controller.StudentController) {
	g := api.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)

	admin := authMw.IsAdministrator()
	g.Post("/", admin, ctl.Create)
	g.Put("/:id", admin, ctl.Update)
	g.Delete("/:id", admin, ctl.Delete)
}
