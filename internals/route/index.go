package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "planner_backend/internals/route/details"
)

var startTime = time.Now()

// SetupRoutes memasang semua route di bawah /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api/v1")
	api.Get("/onlineCheck", OnlineCheck)

	log.Println("[INFO] Mounting account routes...")
	routeDetails.AccountRoutes(api, db)

	log.Println("[INFO] Mounting planner routes...")
	routeDetails.PlannerRoutes(api, db)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
