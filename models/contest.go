// models/contest.go
package models

import "time"

type Contest struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MatchID   uint   `gorm:"not null;index" json:"match_id"`
	Code      string `gorm:"unique;size:10" json:"code"`
	CreatedBy uint   `gorm:"not null" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Match *Match `gorm:"foreignKey:MatchID" json:"match,omitempty"`
	Teams []Team `gorm:"foreignKey:ContestID" json:"teams,omitempty"`
}

func (Contest) TableName() string {
	return "contests"
}

// Team is one user's player selection submitted to one contest. A user may
// hold at most one team per contest, backed by a unique index on
// (contest_id, user_id).
type Team struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ContestID uint `gorm:"not null;uniqueIndex:idx_teams_contest_user" json:"contest_id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_teams_contest_user" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Players []TeamPlayer `gorm:"foreignKey:TeamID" json:"players,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// PlayerIDs returns the selected match player ids in stored order.
func (t *Team) PlayerIDs() []uint {
	ids := make([]uint, 0, len(t.Players))
	for _, p := range t.Players {
		ids = append(ids, p.MatchPlayerID)
	}
	return ids
}

// TeamPlayer links a team to one selected match player.
type TeamPlayer struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	TeamID        uint `gorm:"not null;index" json:"team_id"`
	MatchPlayerID uint `gorm:"not null" json:"match_player_id"`
}

func (TeamPlayer) TableName() string {
	return "team_players"
}
