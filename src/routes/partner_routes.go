package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/royhasan/StudyMate-Server/src/controllers"
)

// PartnerRoutes sets up partner-profile routes for creating, listing,
// fetching, updating, deleting, and the top-rated query
func PartnerRoutes(app *fiber.App, ctl *controllers.PartnerController) {
	partners := app.Group("/partners")

	partners.Post("/", ctl.CreatePartner)
	partners.Get("/", ctl.GetPartners)
	partners.Get("/:id", ctl.GetPartner)
	partners.Patch("/:id", ctl.UpdatePartner)
	partners.Delete("/:id", ctl.DeletePartner)

	app.Get("/top-partners", ctl.GetTopPartners)
}
