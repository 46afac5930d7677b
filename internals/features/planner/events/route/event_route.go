package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/events/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/events
// Route statis (/user, /attending) didaftarkan sebelum /:id.
func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events", authMiddleware.RequireSession(db))
	events.Get("/", ctrl.List)
	events.Post("/", ctrl.Create)
	events.Get("/user/@me", ctrl.ListMine)
	events.Get("/user/:user_id", ctrl.ListByUser)
	events.Get("/attending/@me", ctrl.Attending)

	events.Get("/:id", ctrl.Get)
	events.Patch("/:id", ctrl.Update)
	events.Delete("/:id", ctrl.Delete)
	events.Post("/:id/attend", ctrl.Attend)
	events.Delete("/:id/attend", ctrl.Leave)
	events.Get("/:id/attendees", ctrl.Attendees)
}
