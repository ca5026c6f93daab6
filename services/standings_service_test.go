package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasycricket/models"
)

type standingsFixture struct {
	matches  *fakeMatchStore
	contests *fakeContestStore
	teams    *fakeTeamStore
	svc      *StandingsService
	match    *models.Match
	contest  *models.Contest
}

func newStandingsFixture(t *testing.T, playerCount int) *standingsFixture {
	t.Helper()

	f := &standingsFixture{
		matches:  newFakeMatchStore(),
		contests: newFakeContestStore(),
		teams:    newFakeTeamStore(),
	}
	f.svc = NewStandingsService(f.contests, f.matches, f.teams)

	f.match = &models.Match{
		TeamA: "India",
		TeamB: "Australia",
		Date:  time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
	}
	if err := f.matches.CreateMatch(context.Background(), f.match); err != nil {
		t.Fatalf("seed match: %v", err)
	}
	for i := 0; i < playerCount; i++ {
		if err := f.matches.AddPlayer(context.Background(), &models.MatchPlayer{
			MatchID: f.match.ID,
			Name:    "Player",
		}); err != nil {
			t.Fatalf("seed player: %v", err)
		}
	}

	f.contest = &models.Contest{MatchID: f.match.ID}
	if err := f.contests.CreateContest(context.Background(), f.contest); err != nil {
		t.Fatalf("seed contest: %v", err)
	}

	return f
}

func (f *standingsFixture) submit(t *testing.T, userID uint, playerIDs ...uint) *models.Team {
	t.Helper()

	team := &models.Team{ContestID: f.contest.ID, UserID: userID}
	if err := f.teams.CreateTeam(context.Background(), team, playerIDs); err != nil {
		t.Fatalf("seed team for user %d: %v", userID, err)
	}
	return team
}

func (f *standingsFixture) setScore(t *testing.T, playerID uint, score int) {
	t.Helper()

	if err := f.matches.SetPlayerScore(context.Background(), f.match.ID, playerID, score); err != nil {
		t.Fatalf("set score for player %d: %v", playerID, err)
	}
}

func TestStandingsUnknownContest(t *testing.T) {
	f := newStandingsFixture(t, 0)

	_, err := f.svc.GetStandings(context.Background(), 99)
	if !errors.Is(err, ErrContestNotFound) {
		t.Fatalf("expected ErrContestNotFound, got %v", err)
	}
}

func TestStandingsEmptyContest(t *testing.T) {
	f := newStandingsFixture(t, 2)

	entries, err := f.svc.GetStandings(context.Background(), f.contest.ID)
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty standings, got %d entries", len(entries))
	}
}

func TestStandingsOrderingAndTieBreak(t *testing.T) {
	// Four single-player teams scoring [50, 80, 80, 30]: both 80s rank
	// ahead of the 50, which ranks ahead of the 30, and the two 80s order
	// by ascending team id.
	f := newStandingsFixture(t, 4)

	team1 := f.submit(t, 1, 1)
	team2 := f.submit(t, 2, 2)
	team3 := f.submit(t, 3, 3)
	team4 := f.submit(t, 4, 4)

	f.setScore(t, 1, 50)
	f.setScore(t, 2, 80)
	f.setScore(t, 3, 80)
	f.setScore(t, 4, 30)

	entries, err := f.svc.GetStandings(context.Background(), f.contest.ID)
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}

	wantOrder := []uint{team2.ID, team3.ID, team1.ID, team4.ID}
	wantScores := []int{80, 80, 50, 30}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, entry := range entries {
		if entry.TeamID != wantOrder[i] {
			t.Fatalf("position %d: expected team %d, got %d", i, wantOrder[i], entry.TeamID)
		}
		if entry.Score != wantScores[i] {
			t.Fatalf("position %d: expected score %d, got %d", i, wantScores[i], entry.Score)
		}
		if entry.Rank != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, entry.Rank)
		}
	}
}

func TestStandingsScenario(t *testing.T) {
	// Match with players P1, P2, P3; one team of [P1, P2]; scores 45 and
	// 30 land as a single 75-point entry.
	f := newStandingsFixture(t, 3)

	team := f.submit(t, 1, 1, 2)

	f.setScore(t, 1, 45)
	f.setScore(t, 2, 30)
	f.setScore(t, 3, 99) // unselected player must not count

	entries, err := f.svc.GetStandings(context.Background(), f.contest.ID)
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	got := entries[0]
	if got.TeamID != team.ID || got.UserID != 1 || got.Score != 75 {
		t.Fatalf("expected (team %d, user 1, 75), got (%d, %d, %d)",
			team.ID, got.TeamID, got.UserID, got.Score)
	}
}

func TestStandingsReflectScoreCorrections(t *testing.T) {
	f := newStandingsFixture(t, 1)
	f.submit(t, 1, 1)

	f.setScore(t, 1, 45)
	entries, err := f.svc.GetStandings(context.Background(), f.contest.ID)
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}
	if entries[0].Score != 45 {
		t.Fatalf("expected 45, got %d", entries[0].Score)
	}

	// A late correction replaces the total on the next read, nothing is
	// cached inside the projector.
	f.setScore(t, 1, 20)
	entries, err = f.svc.GetStandings(context.Background(), f.contest.ID)
	if err != nil {
		t.Fatalf("get standings after correction: %v", err)
	}
	if entries[0].Score != 20 {
		t.Fatalf("expected corrected 20, got %d", entries[0].Score)
	}
}
