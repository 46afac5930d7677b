package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/marks/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/marks
func MarkRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMarkController(db)

	marks := api.Group("/marks", authMiddleware.RequireSession(db))
	marks.Get("/", ctrl.List)
	marks.Post("/", ctrl.Create)
	marks.Put("/", ctrl.Update)
	marks.Delete("/", ctrl.Delete)
}
