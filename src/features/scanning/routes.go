package scanning

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the scanning feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	scanning := app.Group("/scanning")
	scanning.Post("/rescan", handler.Rescan)
	scanning.Get("/status", handler.Status)
}
