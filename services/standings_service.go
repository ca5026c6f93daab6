// services/standings_service.go - Ranked leaderboards per contest
package services

import (
	"context"
	"errors"
	"sort"

	"fantasycricket/storage"
)

type StandingsEntry struct {
	Rank   int  `json:"rank"`
	TeamID uint `json:"team_id"`
	UserID uint `json:"user_id"`
	Score  int  `json:"score"`
}

type StandingsService struct {
	contests storage.ContestStore
	matches  storage.MatchStore
	teams    storage.TeamStore
}

func NewStandingsService(contests storage.ContestStore, matches storage.MatchStore, teams storage.TeamStore) *StandingsService {
	return &StandingsService{
		contests: contests,
		matches:  matches,
		teams:    teams,
	}
}

// GetStandings derives the contest leaderboard from current player scores.
// A team's score is the sum of its selected players' scores; nothing here
// reads or writes a stored total. Order: score descending, ties broken by
// ascending team id so the earliest submission wins the tie.
//
// The read is not transactional across rows: standings computed while
// scores are still being pushed may mix old and new values, which is
// acceptable for a live leaderboard.
func (s *StandingsService) GetStandings(ctx context.Context, contestID uint) ([]StandingsEntry, error) {
	contest, err := s.contests.ContestByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	players, err := s.matches.PlayersByMatch(ctx, contest.MatchID)
	if err != nil {
		return nil, err
	}
	scoreByPlayer := make(map[uint]int, len(players))
	for _, p := range players {
		scoreByPlayer[p.ID] = p.Score
	}

	teams, err := s.teams.TeamsByContest(ctx, contestID)
	if err != nil {
		return nil, err
	}

	entries := make([]StandingsEntry, 0, len(teams))
	for _, team := range teams {
		total := 0
		for _, id := range team.PlayerIDs() {
			total += scoreByPlayer[id]
		}
		entries = append(entries, StandingsEntry{
			TeamID: team.ID,
			UserID: team.UserID,
			Score:  total,
		})
	}

	// Teams arrive ordered by ascending id, so a stable sort on score alone
	// keeps the tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
