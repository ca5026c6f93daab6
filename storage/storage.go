// storage/storage.go - Storage collaborator contracts for the domain services
package storage

import (
	"context"
	"errors"

	"fantasycricket/models"
)

// Sentinel errors every store implementation translates its backend errors
// into. The services map these onto their own error taxonomy.
var (
	ErrNotFound     = errors.New("storage: record not found")
	ErrDuplicateKey = errors.New("storage: duplicate key")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uint) error
}

type MatchStore interface {
	CreateMatch(ctx context.Context, match *models.Match) error
	MatchByID(ctx context.Context, id uint) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)

	AddPlayer(ctx context.Context, player *models.MatchPlayer) error
	// PlayersByMatch returns the match's players ordered by insertion
	// (ascending id).
	PlayersByMatch(ctx context.Context, matchID uint) ([]models.MatchPlayer, error)
	// SetPlayerScore replaces the stored score for the (matchID, playerID)
	// pair. Returns ErrNotFound when the player does not belong to the match.
	SetPlayerScore(ctx context.Context, matchID, playerID uint, score int) error
}

type ContestStore interface {
	CreateContest(ctx context.Context, contest *models.Contest) error
	ContestByID(ctx context.Context, id uint) (*models.Contest, error)
	ContestsByMatch(ctx context.Context, matchID uint) ([]models.Contest, error)
}

type TeamStore interface {
	// CreateTeam persists the team and its player selection atomically.
	// Returns ErrDuplicateKey when the user already holds a team in the
	// contest; the backing store must enforce this with a unique constraint
	// on (contest_id, user_id), not an engine-side lock.
	CreateTeam(ctx context.Context, team *models.Team, playerIDs []uint) error
	TeamByContestAndUser(ctx context.Context, contestID, userID uint) (*models.Team, error)
	// TeamsByContest returns teams with selections preloaded, ordered by
	// ascending team id.
	TeamsByContest(ctx context.Context, contestID uint) ([]models.Team, error)
}
