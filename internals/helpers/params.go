package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"planner_backend/internals/helpers/apperr"
)

// ParamUint membaca path param :name sebagai id positif.
func ParamUint(c *fiber.Ctx, name string) (uint, error) {
	return ParseID(c.Params(name), name)
}

// ParseID: string → id positif, error InvalidInput kalau bukan angka > 0.
func ParseID(raw, name string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.InvalidInput("invalid " + name)
	}
	return uint(n), nil
}
