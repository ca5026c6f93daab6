// models/match.go
package models

import "time"

type Match struct {
	ID    uint      `gorm:"primaryKey" json:"id"`
	TeamA string    `gorm:"not null;size:100" json:"team_a"`
	TeamB string    `gorm:"not null;size:100" json:"team_b"`
	Date  time.Time `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Players  []MatchPlayer `gorm:"foreignKey:MatchID" json:"players,omitempty"`
	Contests []Contest     `gorm:"foreignKey:MatchID" json:"contests,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// Started reports whether the match has begun as of now. Submissions and
// catalog changes close at the scheduled start time.
func (m *Match) Started(now time.Time) bool {
	return !now.Before(m.Date)
}

// MatchPlayer is a real player's participation record within one match.
// Score is replaced wholesale by each score update, never accumulated.
type MatchPlayer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	MatchID uint   `gorm:"not null;index" json:"match_id"`
	Name    string `gorm:"not null;size:100" json:"name"`
	Score   int    `gorm:"not null;default:0" json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MatchPlayer) TableName() string {
	return "match_players"
}
