package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/classes/dto"
	classService "planner_backend/internals/features/planner/classes/service"
	homeworkDTO "planner_backend/internals/features/planner/homework/dto"
	homeworkService "planner_backend/internals/features/planner/homework/service"
	helper "planner_backend/internals/helpers"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// GET /api/v1/classes: kelas milik user beserta murid dan tugasnya
func (cc *ClassController) ListOwned(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	classes, err := classService.ListClassDetailsForTeacher(cc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", classes)
}

// GET /api/v1/classes/enrolled/@me
func (cc *ClassController) ListEnrolled(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	classes, err := classService.ListClassesForStudent(cc.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", classes)
}

// GET /api/v1/classes/:id: pemilik atau murid
func (cc *ClassController) Get(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	detail, err := classService.GetReadableClass(cc.DB.WithContext(c.UserContext()), id, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", detail)
}

// POST /api/v1/classes (teacher)
func (cc *ClassController) Create(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.ClassNameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	class, err := classService.CreateClass(cc.DB.WithContext(c.UserContext()), me.UserID, req.Name)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("[CLASS] created id=%d teacher=%d", class.ClassID, me.UserID)
	return helper.JsonCreated(c, "Class created", class)
}

// PATCH /api/v1/classes/:id (owner): rename
func (cc *ClassController) Rename(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.ClassNameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	class, err := classService.RenameOwnedClass(cc.DB.WithContext(c.UserContext()), id, me.UserID, req.Name)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Class updated", class)
}

// DELETE /api/v1/classes/:id (owner)
func (cc *ClassController) Delete(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := classService.DeleteOwnedClass(cc.DB.WithContext(c.UserContext()), id, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}

// PATCH /api/v1/classes/:id/students (owner)
func (cc *ClassController) AddStudents(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.AddStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	ids := req.IDs()
	if len(ids) == 0 {
		return helper.JsonValidationError(c, map[string][]string{"student_id": {"is required"}})
	}

	added, err := classService.AddStudentsToOwnedClass(cc.DB.WithContext(c.UserContext()), id, me.UserID, ids)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Students added", dto.AddStudentsResponse{
		ClassID: id,
		Added:   added,
		Skipped: len(ids) - len(added),
	})
}

// DELETE /api/v1/classes/:id/students/:student_id (owner)
func (cc *ClassController) RemoveStudent(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	studentID, err := helper.ParamUint(c, "student_id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := classService.RemoveStudentFromOwnedClass(cc.DB.WithContext(c.UserContext()), id, me.UserID, studentID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Student removed", fiber.Map{"class_id": id, "student_id": studentID})
}

// GET /api/v1/classes/:id/homework (owner)
func (cc *ClassController) ListHomework(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	db := cc.DB.WithContext(c.UserContext())
	if _, err := classService.GetOwnedClass(db, id, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	hw, err := homeworkService.ListClassHomework(db, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", hw)
}

// POST /api/v1/classes/:id/homework (owner): satu row per murid saat ini
func (cc *ClassController) AssignHomework(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req homeworkDTO.ClassHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var n int
	err = cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if _, err := classService.GetOwnedClass(tx, id, me.UserID); err != nil {
			return err
		}
		var err error
		n, err = homeworkService.AssignToClass(tx, id, req.Name, req.Due(), req.Desc())
		return err
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Homework assigned", dto.ClassHomeworkResponse{ClassID: id, Count: int64(n)})
}

// DELETE /api/v1/classes/:id/homework (owner): hapus semua row satu tugas kelas
func (cc *ClassController) UnassignHomework(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req homeworkDTO.ClassHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var n int64
	err = cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if _, err := classService.GetOwnedClass(tx, id, me.UserID); err != nil {
			return err
		}
		var err error
		n, err = homeworkService.UnassignFromClass(tx, id, req.Name, req.Due(), req.Desc())
		return err
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Homework removed", dto.ClassHomeworkResponse{ClassID: id, Count: n})
}
