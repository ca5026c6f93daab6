// services/errors.go - Domain error taxonomy
//
// Every failure a service returns is one of these sentinels (or wraps one).
// The services never suppress or retry; the transport layer maps each kind
// onto a stable HTTP status.
package services

import "errors"

var (
	// Not found
	ErrMatchNotFound    = errors.New("match not found")
	ErrContestNotFound  = errors.New("contest not found")
	ErrPlayerNotInMatch = errors.New("player does not belong to the contest's match")
	ErrUserNotFound     = errors.New("user not found")

	// Conflict
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateSubmission = errors.New("user already submitted a team to this contest")

	// Validation
	ErrInvalidCredentialFormat  = errors.New("invalid email or password format")
	ErrInvalidMatchTeams        = errors.New("both team names are required")
	ErrInvalidPlayerName        = errors.New("player name is required")
	ErrInvalidTeamSize          = errors.New("team size does not match the required size")
	ErrDuplicatePlayerSelection = errors.New("team selection contains duplicate players")
	ErrInvalidScore             = errors.New("score must not be negative")

	// Auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin privileges required")

	// Locked
	ErrContestLocked = errors.New("contest is locked, match has started")
	ErrMatchStarted  = errors.New("match has already started")
)

// ErrorKind buckets domain errors for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
	KindLocked
)

// Kind classifies err into its taxonomy bucket. Unknown errors are internal.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMatchNotFound),
		errors.Is(err, ErrContestNotFound),
		errors.Is(err, ErrPlayerNotInMatch),
		errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateSubmission):
		return KindConflict
	case errors.Is(err, ErrInvalidCredentialFormat),
		errors.Is(err, ErrInvalidMatchTeams),
		errors.Is(err, ErrInvalidPlayerName),
		errors.Is(err, ErrInvalidTeamSize),
		errors.Is(err, ErrDuplicatePlayerSelection),
		errors.Is(err, ErrInvalidScore):
		return KindValidation
	case errors.Is(err, ErrInvalidCredentials):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrContestLocked),
		errors.Is(err, ErrMatchStarted):
		return KindLocked
	default:
		return KindInternal
	}
}
