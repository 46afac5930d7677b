package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/constants"
	authService "planner_backend/internals/features/users/auth/service"
	userModel "planner_backend/internals/features/users/user/model"
	helper "planner_backend/internals/helpers"
	"planner_backend/internals/helpers/apperr"
)

const LocUser = "user"

// RequireSession resolve Bearer token → user dan simpan di Locals("user").
func RequireSession(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := helper.GetRawAccessToken(c)
		if token == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrNotAuthenticated)
		}

		user, err := authService.ResolveSession(db.WithContext(c.UserContext()), token)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrNotAuthenticated)
			}
			log.Printf("[AUTH] resolve session gagal: %v", err)
			return helper.JsonFromError(c, err)
		}

		helper.SetRawAccessToken(c, token)
		c.Locals(LocUser, user)
		return c.Next()
	}
}

// CurrentUser mengambil user hasil RequireSession (nil kalau belum login).
func CurrentUser(c *fiber.Ctx) *userModel.UserModel {
	u, _ := c.Locals(LocUser).(*userModel.UserModel)
	return u
}
