// services/catalog_service.go - Match and player catalog
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fantasycricket/models"
	"fantasycricket/storage"
)

// CatalogService owns the canonical matches and the player pool of each
// match. Players are append-only per match and the pool freezes once the
// match starts, so every historical team selection stays resolvable.
type CatalogService struct {
	matches storage.MatchStore
	clock   func() time.Time
}

func NewCatalogService(matches storage.MatchStore) *CatalogService {
	return &CatalogService{
		matches: matches,
		clock:   time.Now,
	}
}

func (s *CatalogService) CreateMatch(ctx context.Context, teamA, teamB string, date time.Time) (*models.Match, error) {
	teamA = strings.TrimSpace(teamA)
	teamB = strings.TrimSpace(teamB)
	if teamA == "" || teamB == "" {
		return nil, ErrInvalidMatchTeams
	}

	match := &models.Match{
		TeamA:     teamA,
		TeamB:     teamB,
		Date:      date,
		CreatedAt: s.clock(),
	}

	if err := s.matches.CreateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

func (s *CatalogService) AddMatchPlayer(ctx context.Context, matchID uint, name string) (*models.MatchPlayer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPlayerName
	}

	match, err := s.matches.MatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if match.Started(s.clock()) {
		return nil, ErrMatchStarted
	}

	player := &models.MatchPlayer{
		MatchID:   matchID,
		Name:      name,
		Score:     0,
		CreatedAt: s.clock(),
	}

	if err := s.matches.AddPlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// GetMatchPlayers returns the match's players in insertion order.
func (s *CatalogService) GetMatchPlayers(ctx context.Context, matchID uint) ([]models.MatchPlayer, error) {
	if _, err := s.matches.MatchByID(ctx, matchID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return s.matches.PlayersByMatch(ctx, matchID)
}

func (s *CatalogService) ListMatches(ctx context.Context) ([]models.Match, error) {
	return s.matches.ListMatches(ctx)
}

func (s *CatalogService) GetMatch(ctx context.Context, matchID uint) (*models.Match, error) {
	match, err := s.matches.MatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}
