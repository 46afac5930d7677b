package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/constants"
	"planner_backend/internals/features/planner/subjects/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/subjects
func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)
	onlyTeachers := authMiddleware.OnlyTeachers(constants.TeacherOnlyModifySubjects)

	subjects := api.Group("/subjects", authMiddleware.RequireSession(db))
	subjects.Get("/", ctrl.List)
	subjects.Post("/", ctrl.Create)
	subjects.Get("/name/:name", ctrl.ListByName)
	subjects.Get("/id/:id", ctrl.GetByID)
	subjects.Patch("/:id", onlyTeachers, ctrl.Update)
	subjects.Delete("/:id", onlyTeachers, ctrl.Delete)
}
