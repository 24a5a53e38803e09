package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/royhasan/StudyMate-Server/src/controllers"
)

// ConnectionRoutes sets up connection-request routes for submitting,
// listing, updating, and deleting requests
func ConnectionRoutes(app *fiber.App, ctl *controllers.ConnectionController) {
	connections := app.Group("/connections")

	connections.Post("/", ctl.SendConnectionRequest)
	connections.Get("/", ctl.GetConnections)
	connections.Patch("/:id", ctl.UpdateConnection)
	connections.Delete("/:id", ctl.DeleteConnection)
}
