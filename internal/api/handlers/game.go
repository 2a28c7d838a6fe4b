package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/service"
	"github.com/rs/zerolog"
)

const maxGuessBody = 1 << 10

type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// GuessRequest carries the username exactly as typed. Blank, missing or
// unknown names all end up as a failed lookup.
type GuessRequest struct {
	Username string `json:"username"`
}

func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	var req GuessRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGuessBody)).Decode(&req); err != nil {
		log.Warn().Err(err).Str("handler", "game.Guess").Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.gameService.Guess(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlayerNotFound):
			writeError(w, http.StatusNotFound, "Player not found")
		default:
			log.Error().Err(err).Str("handler", "game.Guess").Str("username", req.Username).Msg("guess failed")
			writeError(w, http.StatusInternalServerError, "Failed to evaluate guess")
		}
		return
	}

	log.Debug().
		Str("username", result.Username).
		Bool("correct", result.IsCorrect).
		Msg("guess evaluated")

	writeJSON(w, http.StatusOK, result)
}
