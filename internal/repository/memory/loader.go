package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/lookup"
	"github.com/dom/prodle/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Load reads the roster and the team image mapping in parallel and builds the
// in-memory repositories. A missing or malformed roster is fatal; a missing
// or malformed mapping only disables local team logos.
func Load(ctx context.Context, playersPath, teamImagesPath string, logger zerolog.Logger) (*repository.Repositories, error) {
	var (
		players    []*domain.Player
		teamImages map[string]string
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		players, err = LoadPlayers(playersPath)
		return err
	})

	g.Go(func() error {
		teamImages = LoadTeamImages(teamImagesPath, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	repos, err := NewRepositories(players, teamImages)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("players", repos.Player.Count()).
		Int("team_images", repos.TeamImage.Count()).
		Str("players_file", playersPath).
		Msg("roster loaded")

	return repos, nil
}

func NewRepositories(players []*domain.Player, teamImages map[string]string) (*repository.Repositories, error) {
	playerRepo, err := NewPlayerRepository(players)
	if err != nil {
		return nil, err
	}

	return &repository.Repositories{
		Player:    playerRepo,
		TeamImage: NewTeamImageRepository(teamImages),
	}, nil
}

// LoadPlayers reads and normalizes the roster file
func LoadPlayers(path string) ([]*domain.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read players file: %w", err)
	}

	return ParsePlayers(data)
}

// playerRecord shadows kda_ratio so a record without the key can be told
// apart from an explicit 0.
type playerRecord struct {
	*domain.Player
	Ratio *float64 `json:"kda_ratio"`
}

// ParsePlayers decodes a JSON array of player records and fills in derived
// fields. The empty array is rejected since there would be nothing to guess.
func ParsePlayers(data []byte) ([]*domain.Player, error) {
	var records []*playerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse players file: %w", err)
	}

	if len(records) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	players := make([]*domain.Player, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrInvalidPlayerData)
		}
		p := rec.Player
		if p == nil {
			p = &domain.Player{}
		}
		if err := normalizePlayer(p, rec.Ratio); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, p.Username, err)
		}
		players[i] = p
	}

	return players, nil
}

// normalizePlayer validates p and fills derived fields. A nil ratio means the
// record had no kda_ratio and it is computed from the averages.
func normalizePlayer(p *domain.Player, ratio *float64) error {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return domain.ErrMissingUsername
	}

	if p.ClubCount < 0 || p.GamesPlayed < 0 {
		return fmt.Errorf("%w: negative count", domain.ErrInvalidPlayerData)
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("%w: negative age", domain.ErrInvalidPlayerData)
	}

	if p.RealName == "" {
		p.RealName = p.Username
	}
	if p.Continent == "" {
		p.Continent = lookup.Continent(p.Country)
	}
	p.Role = domain.ParseRole(string(p.Role))

	if ratio != nil {
		p.Ratio = domain.RoundTo(*ratio, 2)
	} else {
		p.Ratio = domain.KDARatio(p.AvgKills, p.AvgDeaths, p.AvgAssists)
	}

	return nil
}

// LoadTeamImages reads the team name to filename mapping. Any failure is
// logged and yields an empty mapping.
func LoadTeamImages(path string, logger zerolog.Logger) map[string]string {
	mapping := map[string]string{}
	if path == "" {
		return mapping
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", path).Msg("team image mapping not found, logos disabled")
		} else {
			logger.Warn().Err(err).Str("path", path).Msg("failed to read team image mapping")
		}
		return mapping
	}

	if err := json.Unmarshal(data, &mapping); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to parse team image mapping, logos disabled")
		return map[string]string{}
	}

	return mapping
}
