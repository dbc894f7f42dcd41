package route

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, ctl *controller.DashboardController) {
	api.Get("/dashboard/stats", ctl.Stats)
}
