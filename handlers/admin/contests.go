// handlers/admin/contests.go - Contest creation
package admin

import (
	"github.com/gofiber/fiber/v2"

	"fantasycricket/handlers"
)

type CreateContestRequest struct {
	MatchID uint `json:"match_id"`
}

// CreateContest opens a contest on an existing match
// POST /api/admin/contests
func CreateContest(c *fiber.Ctx) error {
	var req CreateContestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	contest, err := contestService.CreateContest(c.Context(), req.MatchID, adminID(c))
	if err != nil {
		return handlers.ErrorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"contest": contest,
	})
}
