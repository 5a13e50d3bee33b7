// handlers/session_routes.go
package handlers

import (
	"voetbal-game-server/middleware"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes wires the practice-session lifecycle, the question flow
// and the battle loop. The gateway forwards paths like
// /api/v1/game/s/session/start -> /session/start.
func SetupSessionRoutes(app *fiber.App, manager *services.StateManager) {
	securedGroup := app.Group("/", middleware.UserContextMiddleware())

	securedGroup.Post("/session/start", func(c *fiber.Ctx) error {
		type Req struct {
			Tables []int `json:"tables"`
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

		session, err := engine.StartSession(req.Tables)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to start session",
				"cause": err.Error(),
			})
		}
		return c.JSON(session)
	})

	securedGroup.Get("/session", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		state := engine.State()
		return c.JSON(fiber.Map{
			"session":        state.CurrentSession,
			"time_remaining": engine.SessionTimeRemaining(),
		})
	})

	securedGroup.Post("/session/end", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		session := engine.EndSession()
		if session == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "no active session",
			})
		}
		// Persist finished sessions right away; the autosave interval is
		// too coarse for a lesson that ends here.
		if err := manager.Flush(engine.UserID()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "session ended but saving failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(session)
	})

	securedGroup.Get("/question/next", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		state := engine.State()
		if state.CurrentSession == nil || !state.CurrentSession.IsActive {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "no active session",
			})
		}
		question := engine.Questions().GenerateNewQuestion(state.CurrentSession.ActiveTables)
		return c.JSON(question)
	})

	securedGroup.Post("/question/answer", func(c *fiber.Ctx) error {
		type Req struct {
			Answer string `json:"answer"`
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

		questions := engine.Questions()
		correctAnswer := questions.CorrectAnswer()
		isCorrect := questions.SubmitAnswer(req.Answer)
		if req.Answer != "" {
			engine.AnswerQuestion(isCorrect)
		}

		state := engine.State()
		return c.JSON(fiber.Map{
			"correct":        isCorrect,
			"correct_answer": correctAnswer,
			"session":        state.CurrentSession,
		})
	})

	securedGroup.Post("/battle/start", func(c *fiber.Ctx) error {
		type Req struct {
			OpponentClubID int   `json:"opponent_club_id"`
			Tables         []int `json:"tables"`
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
		return c.JSON(engine.StartBattle(req.OpponentClubID, req.Tables))
	})

	securedGroup.Post("/battle/round", func(c *fiber.Ctx) error {
		type Req struct {
			TimeToAnswerSeconds float64 `json:"time_to_answer_seconds"`
			Correct             bool    `json:"correct"`
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

		result := engine.PlayBattleRound(req.TimeToAnswerSeconds, req.Correct)
		if result == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "no battle accepting rounds",
			})
		}
		return c.JSON(result)
	})

	securedGroup.Post("/battle/end", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		battle := engine.EndBattle()
		if battle == nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "no battle to end",
			})
		}
		if err := manager.Flush(engine.UserID()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "battle ended but saving failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(battle)
	})

	securedGroup.Get("/stats", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}

		state := engine.State()
		return c.JSON(fiber.Map{
			"total_coins":  state.TotalCoins,
			"total_medals": state.TotalMedals,
			"global_stats": state.GlobalStats,
			"sessions":     len(state.SessionHistory),
		})
	})
}
