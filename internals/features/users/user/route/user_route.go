package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/constants"
	userController "planner_backend/internals/features/users/user/controller"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/users (semua butuh session)
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users", authMiddleware.RequireSession(db))
	users.Get("/@me", ctrl.GetMe)
	users.Patch("/@me", ctrl.UpdateMe)
	users.Delete("/@me", ctrl.DeleteMe)
	users.Post("/reset", ctrl.ResetMe)
	users.Get("/search/:name", authMiddleware.OnlyTeachers(constants.TeacherOnlySearchUsers), ctrl.Search)
	users.Get("/:id", ctrl.GetByID)
}
