package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/homework/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/homework
func HomeworkRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeworkController(db)

	hw := api.Group("/homework", authMiddleware.RequireSession(db))
	hw.Get("/", ctrl.List)
	hw.Post("/", ctrl.Create)
	hw.Patch("/", ctrl.Toggle)
	hw.Put("/:id", ctrl.Update)
	hw.Delete("/", ctrl.Delete)
}
