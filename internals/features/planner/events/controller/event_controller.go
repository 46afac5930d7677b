package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"planner_backend/internals/features/planner/events/dto"
	eventRepo "planner_backend/internals/features/planner/events/repository"
	eventService "planner_backend/internals/features/planner/events/service"
	helper "planner_backend/internals/helpers"
	authMiddleware "planner_backend/internals/middlewares/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/v1/events: public + private milik sendiri
func (ec *EventController) List(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	events, err := eventRepo.ListVisibleEvents(ec.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", events)
}

// GET /api/v1/events/user/@me
func (ec *EventController) ListMine(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	events, err := eventRepo.ListEventsByCreator(ec.DB.WithContext(c.UserContext()), me.UserID, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", events)
}

// GET /api/v1/events/user/:user_id: private milik orang lain tidak ikut
func (ec *EventController) ListByUser(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	creatorID, err := helper.ParamUint(c, "user_id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	events, err := eventRepo.ListEventsByCreator(ec.DB.WithContext(c.UserContext()), creatorID, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", events)
}

// GET /api/v1/events/:id
func (ec *EventController) Get(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	e, err := eventRepo.GetEvent(ec.DB.WithContext(c.UserContext()), id, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", e)
}

// POST /api/v1/events
func (ec *EventController) Create(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	e, err := eventService.CreateEvent(ec.DB.WithContext(c.UserContext()), me, req.ToNewEvent())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Event created", e)
}

// PATCH /api/v1/events/:id (owner)
func (ec *EventController) Update(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	e, err := eventService.UpdateOwnedEvent(ec.DB.WithContext(c.UserContext()), me, id, req.ToNewEvent())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Event updated", e)
}

// DELETE /api/v1/events/:id (owner)
func (ec *EventController) Delete(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := eventService.DeleteOwnedEvent(ec.DB.WithContext(c.UserContext()), id, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

// POST /api/v1/events/:id/attend
func (ec *EventController) Attend(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	added, err := eventService.Attend(ec.DB.WithContext(c.UserContext()), id, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := dto.AttendResponse{EventID: id, Added: added}
	if !added {
		return helper.JsonOK(c, "Already attending", resp)
	}
	return helper.JsonCreated(c, "Attending", resp)
}

// DELETE /api/v1/events/:id/attend
func (ec *EventController) Leave(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := eventService.Leave(ec.DB.WithContext(c.UserContext()), id, me.UserID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "No longer attending", fiber.Map{"event_id": id})
}

// GET /api/v1/events/:id/attendees
func (ec *EventController) Attendees(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	users, err := eventService.Attendees(ec.DB.WithContext(c.UserContext()), id, me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", users)
}

// GET /api/v1/events/attending/@me
func (ec *EventController) Attending(c *fiber.Ctx) error {
	me := authMiddleware.CurrentUser(c)
	events, err := eventService.AttendingEvents(ec.DB.WithContext(c.UserContext()), me.UserID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", events)
}
