package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// pageParams lee limit/offset con defaults y techo (100).
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// dateRangeParams lee from/to en RFC3339 o fecha simple (2006-01-02).
// Valores ausentes o malformados quedan en nil (sin filtro).
func dateRangeParams(c *fiber.Ctx) (from, to *time.Time) {
	return parseDateParam(c.Query("from")), parseDateParam(c.Query("to"))
}

func parseDateParam(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}
