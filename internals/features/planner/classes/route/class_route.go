package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/constants"
	"planner_backend/internals/features/planner/classes/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/classes
func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	classes := api.Group("/classes", authMiddleware.RequireSession(db))
	classes.Get("/", ctrl.ListOwned)
	classes.Post("/", authMiddleware.OnlyTeachers(constants.TeacherOnlyCreateClasses), ctrl.Create)
	classes.Get("/enrolled/@me", ctrl.ListEnrolled)

	classes.Get("/:id", ctrl.Get)
	classes.Patch("/:id", ctrl.Rename)
	classes.Delete("/:id", ctrl.Delete)
	classes.Patch("/:id/students", ctrl.AddStudents)
	classes.Delete("/:id/students/:student_id", ctrl.RemoveStudent)
	classes.Get("/:id/homework", ctrl.ListHomework)
	classes.Post("/:id/homework", ctrl.AssignHomework)
	classes.Delete("/:id/homework", ctrl.UnassignHomework)
}
