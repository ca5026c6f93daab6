package services

import (
	"context"
	"sync"
	"time"

	"fantasycricket/models"
	"fantasycricket/storage"
)

// In-memory store fakes. The team fake mirrors the production unique index
// on (contest_id, user_id) with a check-and-insert under one lock, so the
// concurrent-submission test exercises the same atomicity contract.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]models.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return storage.ErrDuplicateKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUserStore) TouchLastLogin(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.LastLogin = time.Now()
	f.users[id] = user
	return nil
}

type fakeMatchStore struct {
	mu           sync.Mutex
	nextMatchID  uint
	nextPlayerID uint
	matches      map[uint]models.Match
	players      []models.MatchPlayer // insertion order
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{matches: make(map[uint]models.Match)}
}

func (f *fakeMatchStore) CreateMatch(ctx context.Context, match *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextMatchID++
	match.ID = f.nextMatchID
	f.matches[match.ID] = *match
	return nil
}

func (f *fakeMatchStore) MatchByID(ctx context.Context, id uint) (*models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	match, ok := f.matches[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &match, nil
}

func (f *fakeMatchStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matches := make([]models.Match, 0, len(f.matches))
	for _, match := range f.matches {
		matches = append(matches, match)
	}
	return matches, nil
}

func (f *fakeMatchStore) AddPlayer(ctx context.Context, player *models.MatchPlayer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextPlayerID++
	player.ID = f.nextPlayerID
	f.players = append(f.players, *player)
	return nil
}

func (f *fakeMatchStore) PlayersByMatch(ctx context.Context, matchID uint) ([]models.MatchPlayer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var players []models.MatchPlayer
	for _, p := range f.players {
		if p.MatchID == matchID {
			players = append(players, p)
		}
	}
	return players, nil
}

func (f *fakeMatchStore) SetPlayerScore(ctx context.Context, matchID, playerID uint, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, p := range f.players {
		if p.ID == playerID && p.MatchID == matchID {
			f.players[i].Score = score
			return nil
		}
	}
	return storage.ErrNotFound
}

type fakeContestStore struct {
	mu       sync.Mutex
	nextID   uint
	contests map[uint]models.Contest
}

func newFakeContestStore() *fakeContestStore {
	return &fakeContestStore{contests: make(map[uint]models.Contest)}
}

func (f *fakeContestStore) CreateContest(ctx context.Context, contest *models.Contest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	contest.ID = f.nextID
	f.contests[contest.ID] = *contest
	return nil
}

func (f *fakeContestStore) ContestByID(ctx context.Context, id uint) (*models.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contest, ok := f.contests[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &contest, nil
}

func (f *fakeContestStore) ContestsByMatch(ctx context.Context, matchID uint) ([]models.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var contests []models.Contest
	for id := uint(1); id <= f.nextID; id++ {
		if contest, ok := f.contests[id]; ok && contest.MatchID == matchID {
			contests = append(contests, contest)
		}
	}
	return contests, nil
}

type fakeTeamStore struct {
	mu     sync.Mutex
	nextID uint
	teams  []models.Team // insertion order, ids ascending
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{}
}

func (f *fakeTeamStore) CreateTeam(ctx context.Context, team *models.Team, playerIDs []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Atomic check-and-insert, the fake's stand-in for the unique index.
	for _, existing := range f.teams {
		if existing.ContestID == team.ContestID && existing.UserID == team.UserID {
			return storage.ErrDuplicateKey
		}
	}

	f.nextID++
	team.ID = f.nextID
	stored := *team
	for _, id := range playerIDs {
		stored.Players = append(stored.Players, models.TeamPlayer{
			TeamID:        team.ID,
			MatchPlayerID: id,
		})
	}
	f.teams = append(f.teams, stored)
	return nil
}

func (f *fakeTeamStore) TeamByContestAndUser(ctx context.Context, contestID, userID uint) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, team := range f.teams {
		if team.ContestID == contestID && team.UserID == userID {
			t := team
			return &t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeTeamStore) TeamsByContest(ctx context.Context, contestID uint) ([]models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var teams []models.Team
	for _, team := range f.teams {
		if team.ContestID == contestID {
			teams = append(teams, team)
		}
	}
	return teams, nil
}
