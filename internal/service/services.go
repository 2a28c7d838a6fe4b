package service

import (
	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Daily      *DailyService
	Suggestion *SuggestionService
	Game       *GameService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, logger zerolog.Logger) *Services {
	daily := NewDailyService(repos.Player, cfg.Location(), logger)

	return &Services{
		Daily:      daily,
		Suggestion: NewSuggestionService(repos.Player, cfg.SuggestionLimit),
		Game:       NewGameService(repos.Player, repos.TeamImage, daily, cfg.RatioTolerance),
	}
}
