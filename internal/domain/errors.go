package domain

import "errors"

// Roster errors
var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrEmptyRoster       = errors.New("roster has no players")
	ErrDuplicatePlayer   = errors.New("duplicate player username")
	ErrMissingUsername   = errors.New("player record has no username")
	ErrInvalidPlayerData = errors.New("invalid player data")
)
