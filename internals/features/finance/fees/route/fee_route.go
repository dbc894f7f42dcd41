// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/constants"
	"assurance_backend/internals/features/finance/fees/controller"
	authMw "assurance_backend/internals/middlewares/auth"
)

// FeeRoutes expects api to already sit behind AuthMiddleware.
func FeeRoutes(api fiber.Router, ctl *controller.FeeController) {
	admin := authMw.IsAdministrator()

	g := api.Group("/fees")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Record)
	g.Get("/export", authMw.OnlyRoles(constants.RoleErrorAdmin("the fee export"), constants.AccountAdministrator), ctl.Export)
	g.Get("/balance/:studentId", ctl.Balance)
	g.Post("/structure", admin, ctl.SetStructure)
	g.Get("/structure/:studentId", ctl.Structures)
	g.Get("/receipt/:receiptNumber", ctl.Receipt)
	g.Get("/receipt/:receiptNumber/pdf", ctl.ReceiptPDF)
}
