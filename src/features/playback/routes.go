package playback

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the playback feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	playback := app.Group("/playback")
	playback.Post("/play/:id", handler.Play)
	playback.Post("/next", handler.Next)
	playback.Post("/previous", handler.Previous)
	playback.Post("/queue/:id", handler.Enqueue)
	playback.Get("/queue", handler.GetQueue)
	playback.Get("/history", handler.GetHistory)
	playback.Get("/current", handler.Current)
}
