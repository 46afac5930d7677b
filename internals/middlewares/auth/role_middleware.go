package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"planner_backend/internals/constants"
	userModel "planner_backend/internals/features/users/user/model"
	helper "planner_backend/internals/helpers"
)

// RequirePermission validasi permission minimal + custom error message.
// Harus dipasang setelah RequireSession.
func RequirePermission(min userModel.Permission, customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = constants.TeacherOnlyDefault
	}
	return func(c *fiber.Ctx) error {
		u := CurrentUser(c)
		if u == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrNotAuthenticated)
		}
		if !u.UserPermission.AtLeast(min) {
			log.Printf("[AUTH] forbidden user=%d perm=%s need=%s path=%s", u.UserID, u.UserPermission, min, c.Path())
			return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
		}
		return c.Next()
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyTeachers(message string) fiber.Handler {
	return RequirePermission(userModel.PermissionTeacher, message)
}
