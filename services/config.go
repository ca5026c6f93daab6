// services/config.go - Game rule configuration
package services

import (
	"os"
	"strconv"
)

// Config carries the rule knobs the source material leaves to policy:
// required team size, password constraints, and bcrypt cost.
type Config struct {
	TeamSize          int
	MinPasswordLength int
	BcryptCost        int
}

func DefaultConfig() Config {
	return Config{
		TeamSize:          11, // a cricket XI
		MinPasswordLength: 6,
		BcryptCost:        10,
	}
}

// ConfigFromEnv reads overrides from the environment, falling back to
// defaults for anything unset or malformed.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.TeamSize = getEnvInt("TEAM_SIZE", cfg.TeamSize)
	cfg.MinPasswordLength = getEnvInt("MIN_PASSWORD_LENGTH", cfg.MinPasswordLength)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", cfg.BcryptCost)
	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
