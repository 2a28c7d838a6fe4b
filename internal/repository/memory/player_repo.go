package memory

import (
	"context"
	"fmt"

	"github.com/dom/prodle/internal/domain"
)

type playerRepository struct {
	players    []*domain.Player
	byUsername map[string]*domain.Player
}

// NewPlayerRepository indexes players by username. The slice order is kept
// as the dataset order used by suggestions and the daily draw.
func NewPlayerRepository(players []*domain.Player) (*playerRepository, error) {
	byUsername := make(map[string]*domain.Player, len(players))
	for i, p := range players {
		if p == nil || p.Username == "" {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrMissingUsername)
		}
		if _, exists := byUsername[p.Username]; exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicatePlayer, p.Username)
		}
		byUsername[p.Username] = p
	}

	return &playerRepository{
		players:    players,
		byUsername: byUsername,
	}, nil
}

func (r *playerRepository) GetByUsername(_ context.Context, username string) (*domain.Player, error) {
	player, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return player, nil
}

func (r *playerRepository) GetAll(_ context.Context) ([]*domain.Player, error) {
	return r.players, nil
}

func (r *playerRepository) Count() int {
	return len(r.players)
}
