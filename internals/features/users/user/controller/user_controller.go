package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "planner_backend/internals/features/users/auth/service"
	lifecycle "planner_backend/internals/features/users/lifecycle/service"
	"planner_backend/internals/features/users/user/dto"
	"planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	helper "planner_backend/internals/helpers"
	"planner_backend/internals/helpers/apperr"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/v1/users/@me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", dto.ToUserResponse(authMiddleware.CurrentUser(c)))
}

// PATCH /api/v1/users/@me
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.Empty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	updated, err := authService.UpdateUsername(uc.DB.WithContext(c.UserContext()), me.UserID, *req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "Username taken")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", dto.ToUserResponse(updated))
}

// DELETE /api/v1/users/@me
func (uc *UserController) DeleteMe(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	rep, err := lifecycle.DeleteUserAccount(uc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("[USER] account deleted id=%d", me.UserID)
	return helper.JsonDeleted(c, "Account deleted", dto.LifecycleResponse{UserID: me.UserID, Removed: rep})
}

// POST /api/v1/users/reset
func (uc *UserController) ResetMe(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	rep, err := lifecycle.ResetUserData(uc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "User data reset", dto.LifecycleResponse{UserID: me.UserID, Removed: rep})
}

// GET /api/v1/users/search/:name?page=&per_page= (teacher)
func (uc *UserController) Search(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	name := c.Params("name")
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name is required")
	}

	page := helper.ParseFiber(c, helper.DefaultOpts)
	users, total, err := userRepo.SearchUsersPage(uc.DB.WithContext(c.UserContext()), name, me.UserID, page.Limit(), page.Offset())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "ok", model.PublicViews(users), helper.BuildMeta(total, page))
}

// GET /api/v1/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	u, err := userRepo.GetUserByID(uc.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(u))
}
