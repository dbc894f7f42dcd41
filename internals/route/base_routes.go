package routes

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/route/details"
)

func BaseRoutes(app *fiber.App, deps details.Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(c.UserContext(), deps.Store.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(deps.Config.PublicDir, "login.html"))
	})
}

// StaticRoutes serves PUBLIC_DIR. Mounted last so /api never touches the disk.
func StaticRoutes(app *fiber.App, deps details.Deps) {
	app.Static("/", deps.Config.PublicDir, fiber.Static{Compress: true})
}
