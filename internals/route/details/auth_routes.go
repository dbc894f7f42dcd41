package details

import (
	"github.com/gofiber/fiber/v2"

	authController "assurance_backend/internals/features/users/auth/controller"
	authRoute "assurance_backend/internals/features/users/auth/route"
	authService "assurance_backend/internals/features/users/auth/service"
)

// AuthPublicRoutes must be mounted before the protected group exists,
// otherwise the auth middleware answers first.
func AuthPublicRoutes(api fiber.Router, svc *authService.AuthService, deps Deps) *authController.AuthController {
	ctl := authController.NewAuthController(svc, deps.Validate)
	authRoute.AuthPublicRoutes(api, ctl)
	return ctl
}

func AuthProtectedRoutes(protected fiber.Router, ctl *authController.AuthController) {
	authRoute.AuthProtectedRoutes(protected, ctl)
}
