package library

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the library feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	library := app.Group("/library")
	library.Get("/songs/count", handler.GetSongCount)
	library.Get("/songs", handler.GetSongs)
	library.Get("/songs/:id", handler.GetSong)
	library.Patch("/songs/:id", handler.UpdateSong)
	library.Delete("/songs/:id", handler.DeleteSong)
	library.Post("/songs/:id/favorite", handler.ToggleFavorite)
	library.Get("/favorites", handler.GetFavorites)
	library.Get("/search", handler.SearchSongs)
	library.Get("/genres", handler.GetGenres)
	library.Get("/genres/:genre", handler.GetSongsByGenre)
	library.Get("/songs/:id/recommendations", handler.Recommend)
	library.Get("/songs/:id/neighbors", handler.GetNeighbors)
}
