package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectRepo "planner_backend/internals/features/planner/subjects/repository"
	"planner_backend/internals/features/planner/timetable/dto"
	timetableRepo "planner_backend/internals/features/planner/timetable/repository"
	timetableService "planner_backend/internals/features/planner/timetable/service"
	helper "planner_backend/internals/helpers"
	"planner_backend/internals/helpers/apperr"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

// GET /api/v1/timetable
func (tc *TimetableController) Get(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	tt, err := timetableService.GetTimetable(tc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", tt.Days())
}

// POST /api/v1/timetable
func (tc *TimetableController) Set(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.SetSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var change timetableRepo.SlotChange
	err := tc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if _, err := subjectRepo.GetSubjectByID(tx, req.SubjectID); err != nil {
			return err
		}
		var err error
		change, err = timetableRepo.SetSlot(tx, me.UserID, req.SubjectID, *req.Day, *req.Period)
		return err
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject does not exist")
		}
		return helper.JsonFromError(c, err)
	}

	resp := dto.SlotResponse{Day: *req.Day, Period: *req.Period, SubjectID: req.SubjectID, Change: change.String()}
	if change == timetableRepo.SlotInserted {
		return helper.JsonCreated(c, "Slot set", resp)
	}
	return helper.JsonUpdated(c, "Slot set", resp)
}

// DELETE /api/v1/timetable
func (tc *TimetableController) Clear(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.ClearSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	found, err := timetableRepo.ClearSlot(tc.DB.WithContext(c.UserContext()), me.UserID, *req.Day, *req.Period)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Slot is already empty")
	}
	return helper.JsonDeleted(c, "Slot cleared", dto.SlotResponse{Day: *req.Day, Period: *req.Period})
}
