// services/contest_service.go - Contest creation and team submission
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fantasycricket/models"
	"fantasycricket/storage"

	"github.com/google/uuid"
)

type ContestService struct {
	contests storage.ContestStore
	matches  storage.MatchStore
	teams    storage.TeamStore
	config   Config
	clock    func() time.Time
}

func NewContestService(contests storage.ContestStore, matches storage.MatchStore, teams storage.TeamStore, config Config) *ContestService {
	return &ContestService{
		contests: contests,
		matches:  matches,
		teams:    teams,
		config:   config,
		clock:    time.Now,
	}
}

// CreateContest opens a new contest on an existing match. One match may
// host any number of contests. A contest created after the match started is
// legal but born locked, it will accept no teams.
func (s *ContestService) CreateContest(ctx context.Context, matchID, createdBy uint) (*models.Contest, error) {
	if _, err := s.matches.MatchByID(ctx, matchID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	contest := &models.Contest{
		MatchID:   matchID,
		Code:      generateContestCode(),
		CreatedBy: createdBy,
		CreatedAt: s.clock(),
	}

	if err := s.contests.CreateContest(ctx, contest); err != nil {
		return nil, err
	}

	return contest, nil
}

func (s *ContestService) GetContest(ctx context.Context, contestID uint) (*models.Contest, error) {
	contest, err := s.contests.ContestByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}
	return contest, nil
}

// SubmitTeam validates and persists a user's player selection. Checks run
// fail-fast in a fixed order: contest exists, no prior submission, team
// size, no repeated picks, every pick belongs to the contest's match, and
// finally the submission window is still open.
func (s *ContestService) SubmitTeam(ctx context.Context, contestID, userID uint, matchPlayerIDs []uint) (*models.Team, error) {
	contest, err := s.contests.ContestByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	if _, err := s.teams.TeamByContestAndUser(ctx, contestID, userID); err == nil {
		return nil, ErrDuplicateSubmission
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if len(matchPlayerIDs) != s.config.TeamSize {
		return nil, ErrInvalidTeamSize
	}

	seen := make(map[uint]bool, len(matchPlayerIDs))
	for _, id := range matchPlayerIDs {
		if seen[id] {
			return nil, ErrDuplicatePlayerSelection
		}
		seen[id] = true
	}

	pool, err := s.matches.PlayersByMatch(ctx, contest.MatchID)
	if err != nil {
		return nil, err
	}
	inMatch := make(map[uint]bool, len(pool))
	for _, p := range pool {
		inMatch[p.ID] = true
	}
	for _, id := range matchPlayerIDs {
		if !inMatch[id] {
			return nil, ErrPlayerNotInMatch
		}
	}

	match, err := s.matches.MatchByID(ctx, contest.MatchID)
	if err != nil {
		return nil, err
	}
	if match.Started(s.clock()) {
		return nil, ErrContestLocked
	}

	team := &models.Team{
		ContestID: contestID,
		UserID:    userID,
		CreatedAt: s.clock(),
	}

	if err := s.teams.CreateTeam(ctx, team, matchPlayerIDs); err != nil {
		// The unique index on (contest_id, user_id) decides races the
		// pre-check above cannot see. Exactly one of two concurrent
		// submissions lands.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	return team, nil
}

func generateContestCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
