// handlers/catalog_routes.go
package handlers

import (
	"strconv"

	"voetbal-game-server/models"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes exposes the read-only club and player catalog. These are
// public: the catalog is the same for every user.
func SetupCatalogRoutes(app *fiber.App, catalog *services.CatalogService) {
	app.Get("/catalog/clubs", func(c *fiber.Ctx) error {
		if !catalog.IsInitialized() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "catalog not ready",
			})
		}
		return c.JSON(catalog.GetAllClubs())
	})

	app.Get("/catalog/clubs/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid club id",
				"cause": err.Error(),
			})
		}
		club := catalog.GetClubByID(id)
		if club == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "club not found",
			})
		}
		return c.JSON(club)
	})

	app.Get("/catalog/clubs/:id/players", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid club id",
				"cause": err.Error(),
			})
		}
		return c.JSON(catalog.GetPlayersByClub(id))
	})

	app.Get("/catalog/players", func(c *fiber.Ctx) error {
		if !catalog.IsInitialized() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "catalog not ready",
			})
		}
		if position := c.Query("position"); position != "" {
			return c.JSON(catalog.GetPlayersByPosition(models.PlayerPosition(position)))
		}
		return c.JSON(catalog.GetAllPlayers())
	})

	app.Get("/catalog/players/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player id",
				"cause": err.Error(),
			})
		}
		player := catalog.GetPlayerByID(id)
		if player == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}
		return c.JSON(player)
	})
}
