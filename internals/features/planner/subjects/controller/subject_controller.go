package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/subjects/dto"
	subjectRepo "planner_backend/internals/features/planner/subjects/repository"
	helper "planner_backend/internals/helpers"
	"planner_backend/internals/helpers/apperr"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// GET /api/v1/subjects
func (sc *SubjectController) List(c *fiber.Ctx) error {
	subjects, err := subjectRepo.ListSubjects(sc.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", subjects)
}

// GET /api/v1/subjects/name/:name
func (sc *SubjectController) ListByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name is required")
	}
	subjects, err := subjectRepo.ListSubjectsByName(sc.DB.WithContext(c.UserContext()), name)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", subjects)
}

// GET /api/v1/subjects/id/:id
func (sc *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	s, err := subjectRepo.GetSubjectByID(sc.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", s)
}

// POST /api/v1/subjects
// Idempotent: subject kanonik yang sama → 200 dengan id lama.
func (sc *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	s := req.ToModel()
	id, created, err := subjectRepo.CreateSubject(sc.DB.WithContext(c.UserContext()), s)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	resp := dto.CreateSubjectResponse{SubjectID: id, Created: created, Subject: s}
	if !created {
		return helper.JsonOK(c, "Subject already exists", resp)
	}
	log.Printf("[SUBJECT] created id=%d name=%q", id, s.SubjectName)
	return helper.JsonCreated(c, "Subject created", resp)
}

// PATCH /api/v1/subjects/:id (teacher)
func (sc *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	db := sc.DB.WithContext(c.UserContext())
	s, err := subjectRepo.GetSubjectByID(db, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	req.Apply(s)
	if err := subjectRepo.UpdateSubject(db, s); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "An identical subject already exists")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Subject updated", s)
}

// DELETE /api/v1/subjects/:id (teacher)
// Slot timetable yang memakai subject ini ikut dikosongkan.
func (sc *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	found, err := subjectRepo.DeleteSubject(sc.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
