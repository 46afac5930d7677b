package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "planner_backend/internals/features/users/auth/route"
	userRoute "planner_backend/internals/features/users/user/route"
)

// AccountRoutes: /auth (publik + logout) dan /users (butuh session).
func AccountRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
}
