// handlers/admin/scores.go - Score updates
package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fantasycricket/handlers"
)

type UpdateScoreRequest struct {
	MatchID  uint `json:"match_id"`
	PlayerID uint `json:"player_id"`
	Score    int  `json:"score"`
}

// UpdateScore replaces a player's score for a match, then refreshes every
// derived view of it: cached standings are invalidated and live subscribers
// of the affected contests get fresh standings pushed.
// POST /api/admin/scores
func UpdateScore(c *fiber.Ctx) error {
	var req UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := scoringService.UpdateScore(c.Context(), req.MatchID, req.PlayerID, req.Score); err != nil {
		return handlers.ErrorJSON(c, err)
	}

	contests, err := scoringService.AffectedContests(c.Context(), req.MatchID)
	if err != nil {
		// The score update itself landed; stale caches expire on their TTL
		// and live subscribers catch up on the next update.
		log.Printf("Failed to resolve contests for match %d after score update: %v", req.MatchID, err)
	} else {
		contestIDs := make([]uint, 0, len(contests))
		for _, contest := range contests {
			contestIDs = append(contestIDs, contest.ID)
		}
		standingsCache.Invalidate(c.Context(), contestIDs...)

		for _, id := range contestIDs {
			if entries, err := standingsService.GetStandings(c.Context(), id); err == nil {
				liveHub.BroadcastStandings(id, entries)
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
