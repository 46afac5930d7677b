package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/users/auth/controller"
	rateLimiter "planner_backend/internals/middlewares"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

// Base: /api/v1/auth
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	requireSession := authMiddleware.RequireSession(db)
	auth.Get("/logout", requireSession, authController.Logout)
	auth.Post("/logout", requireSession, authController.Logout)
}
