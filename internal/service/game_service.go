package service

import (
	"context"
	"math"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/lookup"
	"github.com/dom/prodle/internal/repository"
)

// TeamImagesPath is the URL prefix team logos are served under
const TeamImagesPath = "/static/team_images/"

// ratioEpsilon absorbs float noise left after rounding to hundredths
const ratioEpsilon = 1e-9

type GameService struct {
	playerRepo     repository.PlayerRepository
	teamImageRepo  repository.TeamImageRepository
	daily          *DailyService
	ratioTolerance float64
}

func NewGameService(playerRepo repository.PlayerRepository, teamImageRepo repository.TeamImageRepository, daily *DailyService, ratioTolerance float64) *GameService {
	return &GameService{
		playerRepo:     playerRepo,
		teamImageRepo:  teamImageRepo,
		daily:          daily,
		ratioTolerance: ratioTolerance,
	}
}

// Guess resolves username exactly as given and compares it against today's
// player. Anything that is not a roster username, including the empty
// string, is ErrPlayerNotFound.
func (s *GameService) Guess(ctx context.Context, username string) (*domain.GuessResult, error) {
	guess, err := s.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	target, err := s.daily.Today(ctx)
	if err != nil {
		return nil, err
	}

	return s.Compare(ctx, guess, target), nil
}

// Compare builds the per-field verdicts of guess against target. Displayed
// values always come from the guess.
func (s *GameService) Compare(ctx context.Context, guess, target *domain.Player) *domain.GuessResult {
	return &domain.GuessResult{
		Username: guess.Username,
		Team: domain.TeamComparison{
			Value:  guess.Team,
			Logo:   s.teamLogo(ctx, guess.Team),
			Status: compareTeam(guess, target),
		},
		League: domain.TextComparison{
			Value:  guess.League,
			Status: exact(guess.League, target.League),
		},
		Age: compareNumber(guess.Age, target.Age),
		Role: domain.TextComparison{
			Value:  guess.Role.String(),
			Status: exact(guess.Role, target.Role),
		},
		Country: domain.CountryComparison{
			Value:  guess.Country,
			Flag:   lookup.Flag(guess.Country),
			Status: compareCountry(guess, target),
		},
		KDA: s.compareRatio(guess.Ratio, target.Ratio),
		Champion: domain.ChampionComparison{
			Value:  guess.MostPlayedChampion,
			Image:  lookup.ChampionImage(guess.MostPlayedChampion),
			Status: exact(guess.MostPlayedChampion, target.MostPlayedChampion),
		},
		Clubs:     compareNumber(domain.IntPtr(guess.ClubCount), domain.IntPtr(target.ClubCount)),
		IsCorrect: guess.Username == target.Username,
	}
}

func (s *GameService) teamLogo(ctx context.Context, team string) string {
	filename, ok := s.teamImageRepo.GetFilename(ctx, team)
	if !ok {
		return ""
	}
	return TeamImagesPath + filename
}

func compareTeam(guess, target *domain.Player) domain.Verdict {
	switch {
	case guess.Team == target.Team:
		return domain.VerdictCorrect
	case guess.League == target.League:
		return domain.VerdictPartial
	default:
		return domain.VerdictIncorrect
	}
}

func compareCountry(guess, target *domain.Player) domain.Verdict {
	switch {
	case guess.Country == target.Country:
		return domain.VerdictCorrect
	case guess.Continent == target.Continent:
		return domain.VerdictPartial
	default:
		return domain.VerdictIncorrect
	}
}

// compareNumber handles any optional integer field. Two unknowns match; a single
// unknown is wrong without a hint.
func compareNumber(guess, target *int) domain.NumberComparison {
	result := domain.NumberComparison{Value: guess, Status: domain.VerdictIncorrect}

	switch {
	case guess == nil && target == nil:
		result.Status = domain.VerdictCorrect
	case guess == nil || target == nil:
	case *guess == *target:
		result.Status = domain.VerdictCorrect
	default:
		result.Direction = domain.DirectionOf(float64(*guess), float64(*target))
	}

	return result
}

func (s *GameService) compareRatio(guess, target float64) domain.RatioComparison {
	g := domain.RoundTo(guess, 2)
	t := domain.RoundTo(target, 2)

	if math.Abs(g-t) <= s.ratioTolerance+ratioEpsilon {
		return domain.RatioComparison{Value: g, Status: domain.VerdictCorrect}
	}

	return domain.RatioComparison{
		Value:     g,
		Status:    domain.VerdictIncorrect,
		Direction: domain.DirectionOf(g, t),
	}
}

func exact[T comparable](guess, target T) domain.Verdict {
	if guess == target {
		return domain.VerdictCorrect
	}
	return domain.VerdictIncorrect
}
