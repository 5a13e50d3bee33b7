// handlers/staff_routes.go
package handlers

import (
	"voetbal-game-server/middleware"
	"voetbal-game-server/models"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

// SetupStaffRoutes wires the staff shop: the fixed hireable catalog plus the
// user's owned roster.
func SetupStaffRoutes(app *fiber.App, manager *services.StateManager) {
	app.Get("/staff/catalog", func(c *fiber.Ctx) error {
		return c.JSON(models.AvailableStaff)
	})

	securedGroup := app.Group("/", middleware.UserContextMiddleware())

	securedGroup.Get("/staff", func(c *fiber.Ctx) error {
		engine, err := engineFromCtx(c, manager)
		if engine == nil {
			return err
		}
		return c.JSON(fiber.Map{
			"owned":        engine.OwnedStaff(),
			"total_medals": engine.TotalMedals(),
		})
	})

	securedGroup.Post("/staff/hire", func(c *fiber.Ctx) error {
		type Req struct {
			StaffID string `json:"staff_id"`
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

		if !engine.HireStaffPaying(req.StaffID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "could not hire staff member",
			})
		}
		return c.JSON(fiber.Map{
			"owned":        engine.OwnedStaff(),
			"total_medals": engine.TotalMedals(),
		})
	})
}
