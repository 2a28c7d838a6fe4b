package repository

import (
	"context"

	"github.com/dom/prodle/internal/domain"
)

// PlayerRepository is a read-only view of the roster. Returned players are
// shared and must not be modified by callers.
type PlayerRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
	// GetAll returns every player in dataset order
	GetAll(ctx context.Context) ([]*domain.Player, error)
	Count() int
}

type TeamImageRepository interface {
	// GetFilename returns the local logo file for a team, if one was downloaded
	GetFilename(ctx context.Context, team string) (string, bool)
	Count() int
}

type Repositories struct {
	Player    PlayerRepository
	TeamImage TeamImageRepository
}
