package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/marks/dto"
	markRepo "planner_backend/internals/features/planner/marks/repository"
	markService "planner_backend/internals/features/planner/marks/service"
	helper "planner_backend/internals/helpers"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type MarkController struct {
	DB *gorm.DB
}

func NewMarkController(db *gorm.DB) *MarkController {
	return &MarkController{DB: db}
}

// GET /api/v1/marks
func (mc *MarkController) List(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	marks, err := markRepo.ListMarksForUser(mc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", marks)
}

// POST /api/v1/marks
func (mc *MarkController) Create(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.CreateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := markService.AddMark(mc.DB.WithContext(c.UserContext()), me.UserID, req.Name, *req.Mark, req.Grade)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Mark created", m)
}

// PUT /api/v1/marks
func (mc *MarkController) Update(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.UpdateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := markService.UpdateOwnedMark(mc.DB.WithContext(c.UserContext()), req.MarkID, me.UserID, req.Name, *req.Mark, req.Grade)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Mark updated", m)
}

// DELETE /api/v1/marks
func (mc *MarkController) Delete(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.MarkIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if err := markService.DeleteOwnedMark(mc.DB.WithContext(c.UserContext()), req.MarkID, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Mark deleted", fiber.Map{"mark_id": req.MarkID})
}
