// services/scoring_service.go - Player score updates
package services

import (
	"context"
	"errors"

	"fantasycricket/models"
	"fantasycricket/storage"
)

type ScoringService struct {
	matches  storage.MatchStore
	contests storage.ContestStore
}

func NewScoringService(matches storage.MatchStore, contests storage.ContestStore) *ScoringService {
	return &ScoringService{
		matches:  matches,
		contests: contests,
	}
}

// UpdateScore replaces the stored score for (matchID, playerID). Replacement
// rather than accumulation makes the call idempotent: applying the same
// update twice leaves the same state as once. Team totals are never written
// here, they are always derived from current player scores.
//
// Updates stay legal after the match has started and even after it ended
// (late scoring corrections).
func (s *ScoringService) UpdateScore(ctx context.Context, matchID, playerID uint, score int) error {
	if _, err := s.matches.MatchByID(ctx, matchID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMatchNotFound
		}
		return err
	}

	players, err := s.matches.PlayersByMatch(ctx, matchID)
	if err != nil {
		return err
	}
	found := false
	for _, p := range players {
		if p.ID == playerID {
			found = true
			break
		}
	}
	if !found {
		return ErrPlayerNotInMatch
	}

	if score < 0 {
		return ErrInvalidScore
	}

	if err := s.matches.SetPlayerScore(ctx, matchID, playerID, score); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPlayerNotInMatch
		}
		return err
	}

	return nil
}

// AffectedContests lists the contests whose standings an update to the
// given match touches. The handler layer uses it to invalidate cached
// standings and feed the live stream.
func (s *ScoringService) AffectedContests(ctx context.Context, matchID uint) ([]models.Contest, error) {
	return s.contests.ContestsByMatch(ctx, matchID)
}
