package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/timetable/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/timetable
func TimetableRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimetableController(db)

	tt := api.Group("/timetable", authMiddleware.RequireSession(db))
	tt.Get("/", ctrl.Get)
	tt.Post("/", ctrl.Set)
	tt.Delete("/", ctrl.Clear)
}
