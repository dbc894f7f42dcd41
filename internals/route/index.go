// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	authService "assurance_backend/internals/features/users/auth/service"
	authMw "assurance_backend/internals/middlewares/auth"
	routeDetails "assurance_backend/internals/route/details"
)

type Deps = routeDetails.Deps

var startTime time.Time

// SetupRoutes mounts every route. Public /api routes are registered before
// the authenticated group so they answer without a token.
func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, deps)

	svc := authService.NewAuthService(deps.Store, deps.Config)

	log.Println("[INFO] Mounting public Auth routes...")
	authCtl := routeDetails.AuthPublicRoutes(app.Group("/api"), svc, deps)

	protected := app.Group("/api", authMw.AuthMiddleware(authMw.AuthOpts{
		Secret:              deps.Config.JWTSecret,
		IsRevoked:           svc.IsRevoked,
		AllowCookieFallback: true,
	}))
	routeDetails.AuthProtectedRoutes(protected, authCtl)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(protected, deps)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(protected, deps)

	StaticRoutes(app, deps)
}
