// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"fantasycricket/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Match{},
		&models.MatchPlayer{},
		&models.Contest{},
		&models.Team{},
		&models.TeamPlayer{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the AutoMigrate tags don't already cover
func createIndexes() {
	db := GetDB()

	// Duplicate-submission guard: the check-and-insert in SubmitTeam relies
	// on this unique index, not on engine-side locking.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_contest_user ON teams(contest_id, user_id)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_match_players_match ON match_players(match_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_contests_match ON contests(match_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_contest ON teams(contest_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_players_team ON team_players(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date)")
}
