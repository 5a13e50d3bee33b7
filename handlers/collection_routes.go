// handlers/collection_routes.go
package handlers

import (
	"errors"
	"strconv"

	"voetbal-game-server/middleware"
	"voetbal-game-server/models"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

// SetupCollectionRoutes wires club progress, pack opening, the card
// collection and the team builder.
func SetupCollectionRoutes(app *fiber.App, manager *services.StateManager) {
	securedGroup := app.Group("/", middleware.UserContextMiddleware())

	securedGroup.Get("/clubs/progress", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(engine.AllClubProgress())
	})

	securedGroup.Get("/clubs/:id/progress", func(c *fiber.Ctx) error {
		clubID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid club id",
				"cause": err.Error(),
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(engine.GetClubProgress(clubID))
	})

	securedGroup.Post("/packs/open", func(c *fiber.Ctx) error {
		type Req struct {
			ClubID int    `json:"club_id"`
			Tier   string `json:"tier"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		cards, err := engine.OpenPack(req.ClubID, models.PackType(req.Tier))
		if err != nil {
			status := fiber.StatusConflict
			if errors.Is(err, services.ErrUnknownPackTier) {
				status = fiber.StatusBadRequest
			}
			return c.Status(status).JSON(fiber.Map{
				"error": "failed to open pack",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"cards":    cards,
			"progress": engine.GetClubProgress(req.ClubID),
		})
	})

	securedGroup.Get("/collection", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		clubQuery := c.Query("club_id")
		if clubQuery != "" {
			clubID, err := strconv.Atoi(clubQuery)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid club id",
					"cause": err.Error(),
				})
			}
			return c.JSON(engine.CardsByClub(clubID))
		}
		return c.JSON(engine.AllPlayerCards())
	})

	securedGroup.Get("/collection/stats", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(fiber.Map{
			"stats":      engine.CollectionStats(),
			"completion": engine.CollectionCompletion(),
		})
	})

	securedGroup.Post("/team", func(c *fiber.Ctx) error {
		type Req struct {
			Name string `json:"name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "team name is required",
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(engine.CreateNewTeam(req.Name))
	})

	securedGroup.Get("/team", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		state := engine.State()
		return c.JSON(fiber.Map{
			"team":        state.CurrentTeam,
			"saved_teams": state.SavedTeams,
			"complete":    engine.IsTeamComplete(),
			"strength":    engine.TeamStrengthByPosition(),
		})
	})

	securedGroup.Put("/team/slots/:slot", func(c *fiber.Ctx) error {
		slotNumber, err := strconv.Atoi(c.Params("slot"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid slot number",
				"cause": err.Error(),
			})
		}

		type Req struct {
			PlayerID int `json:"player_id"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		if !engine.SetPlayerInSlot(slotNumber, req.PlayerID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "could not place player in slot",
			})
		}
		state := engine.State()
		return c.JSON(state.CurrentTeam)
	})

	securedGroup.Delete("/team/slots/:slot", func(c *fiber.Ctx) error {
		slotNumber, err := strconv.Atoi(c.Params("slot"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid slot number",
				"cause": err.Error(),
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		engine.RemovePlayerFromSlot(slotNumber)
		state := engine.State()
		return c.JSON(state.CurrentTeam)
	})

	securedGroup.Post("/team/save", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		engine.SaveCurrentTeam()
		return c.JSON(fiber.Map{"message": "team saved"})
	})

	securedGroup.Post("/team/load", func(c *fiber.Ctx) error {
		type Req struct {
			Name string `json:"name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		if !engine.LoadTeam(req.Name) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no saved team with that name",
			})
		}
		state := engine.State()
		return c.JSON(state.CurrentTeam)
	})
}
