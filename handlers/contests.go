// handlers/contests.go - Team submission, standings, live feed
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"fantasycricket/middleware"
)

type SubmitTeamRequest struct {
	MatchPlayerIDs []uint `json:"match_player_ids"`
}

// GetContest returns one contest
// GET /api/contests/:id
func GetContest(c *fiber.Ctx) error {
	contestID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contest id"})
	}

	contest, err := contestService.GetContest(c.Context(), contestID)
	if err != nil {
		return ErrorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"contest": contest,
	})
}

// SubmitTeam submits the caller's player selection to a contest
// POST /api/contests/:id/teams
func SubmitTeam(c *fiber.Ctx) error {
	contestID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contest id"})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "User not authenticated"})
	}

	var req SubmitTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	team, err := contestService.SubmitTeam(c.Context(), contestID, userID, req.MatchPlayerIDs)
	if err != nil {
		return ErrorJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetStandings returns the contest leaderboard, cache-first
// GET /api/contests/:id/standings
func GetStandings(c *fiber.Ctx) error {
	contestID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contest id"})
	}

	if entries, ok := standingsCache.Get(c.Context(), contestID); ok {
		return c.JSON(fiber.Map{
			"success":   true,
			"standings": entries,
			"cached":    true,
		})
	}

	entries, err := standingsService.GetStandings(c.Context(), contestID)
	if err != nil {
		return ErrorJSON(c, err)
	}

	standingsCache.Set(c.Context(), contestID, entries)

	return c.JSON(fiber.Map{
		"success":   true,
		"standings": entries,
	})
}

// LiveStandingsUpgrade rejects plain HTTP requests on the websocket route
func LiveStandingsUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		contestID, err := paramID(c, "id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid contest id"})
		}
		if _, err := contestService.GetContest(c.Context(), contestID); err != nil {
			return ErrorJSON(c, err)
		}
		c.Locals("contestId", contestID)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// LiveStandings streams standings updates for one contest
// GET /api/contests/:id/live (websocket)
func LiveStandings() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		contestID, ok := conn.Locals("contestId").(uint)
		if !ok {
			conn.Close()
			return
		}

		sub := liveHub.Subscribe(contestID, conn)
		defer func() {
			liveHub.Unsubscribe(contestID, sub)
			conn.Close()
		}()

		// Push the current standings to this subscriber immediately so it
		// doesn't wait for the next score update.
		if entries, err := standingsService.GetStandings(context.Background(), contestID); err == nil {
			liveHub.SendStandings(sub, contestID, entries)
		}

		// Reads only keep the connection alive; clients never send data.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
