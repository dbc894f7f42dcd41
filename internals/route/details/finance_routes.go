package details

import (
	"github.com/gofiber/fiber/v2"

	feeController "assurance_backend/internals/features/finance/fees/controller"
	feeRoute "assurance_backend/internals/features/finance/fees/route"
)

func FinanceRoutes(protected fiber.Router, deps Deps) {
	feeRoute.FeeRoutes(protected, feeController.NewFeeController(deps.Store, deps.Validate))
}
