// handlers/admin/admin.go - Wiring for admin-only endpoints
package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fantasycricket/services"
)

var (
	catalogService   *services.CatalogService
	contestService   *services.ContestService
	scoringService   *services.ScoringService
	standingsService *services.StandingsService
	standingsCache   *services.StandingsCache
	liveHub          *services.LiveHub
)

type Deps struct {
	Catalog   *services.CatalogService
	Contests  *services.ContestService
	Scoring   *services.ScoringService
	Standings *services.StandingsService
	Cache     *services.StandingsCache
	Live      *services.LiveHub
}

func InitHandlers(deps Deps) {
	catalogService = deps.Catalog
	contestService = deps.Contests
	scoringService = deps.Scoring
	standingsService = deps.Standings
	standingsCache = deps.Cache
	liveHub = deps.Live
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(400, "invalid id")
	}
	return uint(id), nil
}

func adminID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userId").(float64); ok {
		return uint(id)
	}
	if id, ok := c.Locals("userId").(uint); ok {
		return id
	}
	return 0
}
