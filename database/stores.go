// database/stores.go - GORM implementations of the storage interfaces
package database

import (
	"context"
	"errors"
	"time"

	"fantasycricket/models"
	"fantasycricket/storage"

	"gorm.io/gorm"
)

// translate maps GORM errors onto the storage sentinels the services
// understand. Relies on TranslateError being enabled on the connection.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrDuplicateKey
	default:
		return err
	}
}

// ================== USERS ==================

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *UserStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, id uint) error {
	return translate(s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error)
}

// ================== MATCHES ==================

type MatchStore struct {
	db *gorm.DB
}

func NewMatchStore(db *gorm.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) CreateMatch(ctx context.Context, match *models.Match) error {
	return translate(s.db.WithContext(ctx).Create(match).Error)
}

func (s *MatchStore) MatchByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	if err := s.db.WithContext(ctx).First(&match, id).Error; err != nil {
		return nil, translate(err)
	}
	return &match, nil
}

func (s *MatchStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.WithContext(ctx).Order("date ASC").Find(&matches).Error
	return matches, translate(err)
}

func (s *MatchStore) AddPlayer(ctx context.Context, player *models.MatchPlayer) error {
	return translate(s.db.WithContext(ctx).Create(player).Error)
}

func (s *MatchStore) PlayersByMatch(ctx context.Context, matchID uint) ([]models.MatchPlayer, error) {
	var players []models.MatchPlayer
	err := s.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("id ASC").
		Find(&players).Error
	return players, translate(err)
}

func (s *MatchStore) SetPlayerScore(ctx context.Context, matchID, playerID uint, score int) error {
	result := s.db.WithContext(ctx).Model(&models.MatchPlayer{}).
		Where("id = ? AND match_id = ?", playerID, matchID).
		Updates(map[string]interface{}{
			"score":      score,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ================== CONTESTS ==================

type ContestStore struct {
	db *gorm.DB
}

func NewContestStore(db *gorm.DB) *ContestStore {
	return &ContestStore{db: db}
}

func (s *ContestStore) CreateContest(ctx context.Context, contest *models.Contest) error {
	return translate(s.db.WithContext(ctx).Create(contest).Error)
}

func (s *ContestStore) ContestByID(ctx context.Context, id uint) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.WithContext(ctx).First(&contest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &contest, nil
}

func (s *ContestStore) ContestsByMatch(ctx context.Context, matchID uint) ([]models.Contest, error) {
	var contests []models.Contest
	err := s.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("id ASC").
		Find(&contests).Error
	return contests, translate(err)
}

// ================== TEAMS ==================

type TeamStore struct {
	db *gorm.DB
}

func NewTeamStore(db *gorm.DB) *TeamStore {
	return &TeamStore{db: db}
}

// CreateTeam writes the team row and its selection in one transaction. The
// unique index on (contest_id, user_id) makes the insert the atomic
// check-and-set for the one-team-per-user rule.
func (s *TeamStore) CreateTeam(ctx context.Context, team *models.Team, playerIDs []uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		for _, playerID := range playerIDs {
			selection := models.TeamPlayer{
				TeamID:        team.ID,
				MatchPlayerID: playerID,
			}
			if err := tx.Create(&selection).Error; err != nil {
				return err
			}
		}

		return nil
	})
	return translate(err)
}

func (s *TeamStore) TeamByContestAndUser(ctx context.Context, contestID, userID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.WithContext(ctx).
		Where("contest_id = ? AND user_id = ?", contestID, userID).
		Preload("Players").
		First(&team).Error
	if err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *TeamStore) TeamsByContest(ctx context.Context, contestID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Preload("Players").
		Order("id ASC").
		Find(&teams).Error
	return teams, translate(err)
}
