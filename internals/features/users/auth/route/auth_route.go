// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/users/auth/controller"
	rateLimiter "assurance_backend/internals/middlewares"
)

// AuthPublicRoutes: /api/auth endpoints that need no token.
func AuthPublicRoutes(api fiber.Router, ctl *controller.AuthController) {
	auth := api.Group("/auth")
	auth.Post("/signup", rateLimiter.RegisterRateLimiter(), ctl.Signup)
	auth.Get("/verify/:token", ctl.Verify)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout)
}

// AuthProtectedRoutes: mounted behind AuthMiddleware.
func AuthProtectedRoutes(api fiber.Router, ctl *controller.AuthController) {
	api.Get("/auth/me", ctl.Me)
}
