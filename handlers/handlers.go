// handlers/handlers.go - Shared handler wiring and error mapping
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fantasycricket/services"
)

var (
	identityService  *services.IdentityService
	catalogService   *services.CatalogService
	contestService   *services.ContestService
	scoringService   *services.ScoringService
	standingsService *services.StandingsService
	standingsCache   *services.StandingsCache
	liveHub          *services.LiveHub
)

// Deps carries everything the handler packages need. Wired once from main.
type Deps struct {
	Identity  *services.IdentityService
	Catalog   *services.CatalogService
	Contests  *services.ContestService
	Scoring   *services.ScoringService
	Standings *services.StandingsService
	Cache     *services.StandingsCache
	Live      *services.LiveHub
}

func InitHandlers(deps Deps) {
	identityService = deps.Identity
	catalogService = deps.Catalog
	contestService = deps.Contests
	scoringService = deps.Scoring
	standingsService = deps.Standings
	standingsCache = deps.Cache
	liveHub = deps.Live
}

// ErrorJSON maps a domain error onto its HTTP status. Each error kind keeps
// a stable status family so clients can rely on it.
func ErrorJSON(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch services.Kind(err) {
	case services.KindNotFound:
		status = fiber.StatusNotFound
		message = err.Error()
	case services.KindConflict:
		status = fiber.StatusConflict
		message = err.Error()
	case services.KindValidation:
		status = fiber.StatusBadRequest
		message = err.Error()
	case services.KindUnauthorized:
		status = fiber.StatusUnauthorized
		message = err.Error()
	case services.KindForbidden:
		status = fiber.StatusForbidden
		message = err.Error()
	case services.KindLocked:
		status = fiber.StatusLocked
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
