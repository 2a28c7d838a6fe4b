package handlers

import (
	"net/http"
	"time"

	"github.com/dom/prodle/internal/service"
	"github.com/rs/zerolog"
)

type DailyHandler struct {
	dailyService *service.DailyService
	enableDebug  bool
}

func NewDailyHandler(dailyService *service.DailyService, enableDebug bool) *DailyHandler {
	return &DailyHandler{
		dailyService: dailyService,
		enableDebug:  enableDebug,
	}
}

type RerollResponse struct {
	Message   string `json:"message"`
	NewPlayer string `json:"new_player"`
}

type DailyInfoResponse struct {
	Date              string    `json:"date"`
	NextReset         time.Time `json:"next_reset"`
	SecondsUntilReset int64     `json:"seconds_until_reset"`
	Players           int       `json:"players"`
	Overridden        bool      `json:"overridden"`
}

func (h *DailyHandler) Reroll(w http.ResponseWriter, r *http.Request) {
	player, err := h.dailyService.Reroll(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("handler", "daily.Reroll").Msg("reroll failed")
		writeError(w, http.StatusInternalServerError, "Failed to reroll daily player")
		return
	}

	writeJSON(w, http.StatusOK, RerollResponse{
		Message:   "Daily player rerolled successfully",
		NewPlayer: player.Username,
	})
}

// Answer exposes the full record of today's player. It is a diagnostic and
// answers 404 unless debug endpoints are enabled.
func (h *DailyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if !h.enableDebug {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	player, err := h.dailyService.Today(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("handler", "daily.Answer").Msg("failed to resolve daily player")
		writeError(w, http.StatusInternalServerError, "Failed to get daily player")
		return
	}

	writeJSON(w, http.StatusOK, player)
}

func (h *DailyHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DailyInfoResponse{
		Date:              h.dailyService.Date(),
		NextReset:         h.dailyService.NextReset(),
		SecondsUntilReset: int64(h.dailyService.UntilReset().Seconds()),
		Players:           h.dailyService.RosterSize(),
		Overridden:        h.dailyService.Overridden(),
	})
}
