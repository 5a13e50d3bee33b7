// handlers/helpers.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"voetbal-game-server/services"
)

// engineFromCtx resolves the caller's game engine from the user context set by
// the auth middleware. On failure the 500 response is already written; callers
// check for a nil engine and return the error as-is.
func engineFromCtx(c *fiber.Ctx, manager *services.StateManager) (*services.GameEngine, error) {
	userID := c.Locals("user_id").(string)
	engine, err := manager.Engine(userID)
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load game state",
			"cause": err.Error(),
		})
	}
	return engine, nil
}
