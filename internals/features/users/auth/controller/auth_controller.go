package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/users/auth/dto"
	"planner_backend/internals/features/users/auth/service"
	helper "planner_backend/internals/helpers"
	"planner_backend/internals/helpers/apperr"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/v1/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	res, err := service.Register(ac.DB.WithContext(c.UserContext()), req.Username, req.Password, req.CodeValue())
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "Username taken")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Registered", dto.NewTokenResponse(res.Token, int(res.Permission)))
}

// POST /api/v1/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	token, err := service.Login(ac.DB.WithContext(c.UserContext()), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect username or password")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Logged in", dto.NewTokenResponse(token, 0))
}

// GET|POST /api/v1/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	user := authMiddleware.CurrentUser(c)
	if err := service.Logout(ac.DB.WithContext(c.UserContext()), user.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}
