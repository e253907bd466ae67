package handlers

import "github.com/gofiber/fiber/v2"

const internalServerError = "Internal server error"

const (
	defaultLimit  = 10
	defaultOffset = 0
)

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	offset = c.QueryInt("offset", defaultOffset)
	if offset < 0 {
		offset = defaultOffset
	}
	return limit, offset
}
