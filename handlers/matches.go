// handlers/matches.go - Public match catalog reads
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ListMatches returns all matches ordered by date
// GET /api/matches
func ListMatches(c *fiber.Ctx) error {
	matches, err := catalogService.ListMatches(c.Context())
	if err != nil {
		return ErrorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"matches": matches,
	})
}

// GetMatch returns one match
// GET /api/matches/:id
func GetMatch(c *fiber.Ctx) error {
	matchID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid match id"})
	}

	match, err := catalogService.GetMatch(c.Context(), matchID)
	if err != nil {
		return ErrorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"match":   match,
	})
}

// GetMatchPlayers returns the match's player pool in insertion order
// GET /api/matches/:id/players
func GetMatchPlayers(c *fiber.Ctx) error {
	matchID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid match id"})
	}

	players, err := catalogService.GetMatchPlayers(c.Context(), matchID)
	if err != nil {
		return ErrorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"players": players,
	})
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(400, "invalid id")
	}
	return uint(id), nil
}
