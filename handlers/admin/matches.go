// handlers/admin/matches.go - Match and player catalog management
package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fantasycricket/handlers"
)

type CreateMatchRequest struct {
	TeamA string    `json:"team_a"`
	TeamB string    `json:"team_b"`
	Date  time.Time `json:"date"`
}

type AddPlayerRequest struct {
	Name string `json:"name"`
}

// CreateMatch registers a new match
// POST /api/admin/matches
func CreateMatch(c *fiber.Ctx) error {
	var req CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Date.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Match date is required"})
	}

	match, err := catalogService.CreateMatch(c.Context(), req.TeamA, req.TeamB, req.Date)
	if err != nil {
		return handlers.ErrorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"match":   match,
	})
}

// AddMatchPlayer appends a player to a match's pool
// POST /api/admin/matches/:id/players
func AddMatchPlayer(c *fiber.Ctx) error {
	matchID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid match id"})
	}

	var req AddPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	player, err := catalogService.AddMatchPlayer(c.Context(), matchID, req.Name)
	if err != nil {
		return handlers.ErrorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"player":  player,
	})
}
