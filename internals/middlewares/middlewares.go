package middlewares

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"planner_backend/internals/configs"
)

const accessLogFormat = "[${time}] ${ip} - ${locals:reqid} ${method} ${path} - ${status} - ${latency}\n"

// SetupMiddlewares memasang middleware global sesuai urutan.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.PanicStackTrace}))
	app.Use(RequestContext(cfg.RequestTimeout))
	if cfg.AccessLog {
		app.Use(AccessLogger(cfg, os.Stdout))
	}
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
}

// AccessLogger mencatat semua request; zona waktu dari LOG_TIMEZONE.
func AccessLogger(cfg configs.Config, out io.Writer) fiber.Handler {
	tz := cfg.LogTimeZone
	if tz == "" {
		tz = "UTC"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     accessLogFormat,
		Output:     out,
	})
}
