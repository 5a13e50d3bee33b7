// handlers/tournament_routes.go
package handlers

import (
	"voetbal-game-server/middleware"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

// SetupTournamentRoutes wires the bracket lifecycle and the medal wallet.
func SetupTournamentRoutes(app *fiber.App, manager *services.StateManager) {
	securedGroup := app.Group("/", middleware.UserContextMiddleware())

	securedGroup.Post("/tournament/start", func(c *fiber.Ctx) error {
		type Req struct {
			Tables   []int  `json:"tables"`
			TeamName string `json:"team_name"`
			ClubID   int    `json:"club_id"`
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

		tournament, err := engine.StartTournament(req.Tables, req.TeamName, req.ClubID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to start tournament",
				"cause": err.Error(),
			})
		}
		return c.JSON(tournament)
	})

	securedGroup.Get("/tournament", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		state := engine.State()
		return c.JSON(fiber.Map{
			"tournament":    state.Tournament,
			"current_match": engine.CurrentTournamentMatch(),
			"qualified":     engine.IsQualified(),
			"bracket":       engine.MatchesByPhase(),
		})
	})

	securedGroup.Post("/tournament/match/complete", func(c *fiber.Ctx) error {
		type Req struct {
			PlayerScore   int `json:"player_score"`
			OpponentScore int `json:"opponent_score"`
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

		if engine.CurrentTournamentMatch() == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "no match awaiting a result",
			})
		}
		engine.CompleteMatch(req.PlayerScore, req.OpponentScore)

		state := engine.State()
		return c.JSON(fiber.Map{
			"tournament": state.Tournament,
			"next_match": engine.CurrentTournamentMatch(),
		})
	})

	securedGroup.Post("/tournament/reset", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		engine.ResetTournament()
		return c.JSON(fiber.Map{"message": "tournament reset"})
	})

	securedGroup.Get("/medals", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(fiber.Map{"total_medals": engine.TotalMedals()})
	})

	// Admin endpoints
	adminGroup := app.Group("/s/admin", middleware.UserContextMiddleware())

	adminGroup.Post("/medals/grant", func(c *fiber.Ctx) error {
		type Req struct {
			UserID string `json:"user_id" validate:"required"`
			Medals int    `json:"medals" validate:"required,min=1"`
			Reason string `json:"reason" validate:"max=255"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.Medals <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "medals must be positive",
			})
		}

		engine, err := manager.Engine(req.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load game state",
				"cause": err.Error(),
			})
		}
		engine.AddMedals(req.Medals)

		return c.JSON(fiber.Map{
			"message": "medals granted successfully",
			"user_id": req.UserID,
			"medals":  req.Medals,
		})
	})
}
