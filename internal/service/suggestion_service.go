package service

import (
	"context"
	"slices"
	"strings"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/repository"
	"golang.org/x/text/cases"
)

type SuggestionService struct {
	playerRepo   repository.PlayerRepository
	defaultLimit int
}

func NewSuggestionService(playerRepo repository.PlayerRepository, defaultLimit int) *SuggestionService {
	return &SuggestionService{
		playerRepo:   playerRepo,
		defaultLimit: defaultLimit,
	}
}

// DefaultLimit is the result cap used when the caller gives none
func (s *SuggestionService) DefaultLimit() int {
	return s.defaultLimit
}

type scored struct {
	player *domain.Player
	ratio  float64
}

// Suggest returns at most limit usernames for query, in three tiers:
// prefix matches (an exact match first), then substring matches, then every
// remaining player ranked by similarity. Matching is case-insensitive under
// Unicode case folding. A blank query or non-positive limit yields nothing.
func (s *SuggestionService) Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	results := []domain.Suggestion{}

	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return results, nil
	}

	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	q := fold.String(query)

	folded := make([]string, len(players))
	for i, p := range players {
		folded[i] = fold.String(p.Username)
	}

	chosen := make([]bool, len(players))
	add := func(i int) bool {
		chosen[i] = true
		results = append(results, toSuggestion(players[i]))
		return len(results) >= limit
	}

	for i, name := range folded {
		if name == q && add(i) {
			return results, nil
		}
	}

	for i, name := range folded {
		if !chosen[i] && strings.HasPrefix(name, q) && add(i) {
			return results, nil
		}
	}

	for i, name := range folded {
		if !chosen[i] && strings.Contains(name, q) && add(i) {
			return results, nil
		}
	}

	rest := make([]scored, 0, len(players)-len(results))
	for i, name := range folded {
		if !chosen[i] {
			rest = append(rest, scored{player: players[i], ratio: similarity(q, name)})
		}
	}

	slices.SortStableFunc(rest, func(a, b scored) int {
		switch {
		case a.ratio > b.ratio:
			return -1
		case a.ratio < b.ratio:
			return 1
		}
		return 0
	})

	for _, r := range rest {
		results = append(results, toSuggestion(r.player))
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

func toSuggestion(p *domain.Player) domain.Suggestion {
	return domain.Suggestion{Username: p.Username, Team: p.Team}
}
