package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/homework/dto"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	homeworkService "planner_backend/internals/features/planner/homework/service"
	helper "planner_backend/internals/helpers"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type HomeworkController struct {
	DB *gorm.DB
	// Now bisa diganti di test.
	Now func() time.Time
}

func NewHomeworkController(db *gorm.DB) *HomeworkController {
	return &HomeworkController{DB: db, Now: time.Now}
}

// GET /api/v1/homework
func (hc *HomeworkController) List(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	rows, err := homeworkRepo.ListHomeworkForUser(hc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/v1/homework
func (hc *HomeworkController) Create(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.CreateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	h := &homeworkModel.HomeworkModel{
		HomeworkName:        req.Name,
		HomeworkUserID:      me.UserID,
		HomeworkDueDate:     req.Due(),
		HomeworkDescription: req.Desc(),
	}
	if err := homeworkRepo.CreateHomework(hc.DB.WithContext(c.UserContext()), h); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Homework created", h)
}

// PATCH /api/v1/homework: toggle selesai / belum
func (hc *HomeworkController) Toggle(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.HomeworkIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	h, err := homeworkService.ToggleOwnedHomework(hc.DB.WithContext(c.UserContext()), req.ID, me.UserID, hc.Now())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Homework updated", h)
}

// PUT /api/v1/homework/:id
func (hc *HomeworkController) Update(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.CreateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	h, err := homeworkService.UpdateOwnedHomework(hc.DB.WithContext(c.UserContext()), id, me.UserID, req.Name, req.Due(), req.Desc())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Homework updated", h)
}

// DELETE /api/v1/homework
func (hc *HomeworkController) Delete(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.HomeworkIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if err := homeworkService.DeleteOwnedHomework(hc.DB.WithContext(c.UserContext()), req.ID, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Homework deleted", fiber.Map{"homework_id": req.ID})
}
