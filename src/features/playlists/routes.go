package playlists

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the playlists feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	playlists := app.Group("/playlists")
	playlists.Get("/", handler.ListPlaylists)
	playlists.Get("/selection", handler.Selected)
	playlists.Delete("/selection", handler.Deselect)
	playlists.Post("/:name", handler.CreatePlaylist)
	playlists.Delete("/:name", handler.DeletePlaylist)
	playlists.Get("/:name", handler.GetSongs)
	playlists.Post("/:name/songs/:id", handler.AddSong)
	playlists.Delete("/:name/songs/:id", handler.RemoveSong)
	playlists.Post("/:name/select", handler.Select)
}
