package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dom/prodle/internal/service"
	"github.com/dom/prodle/internal/validation"
	"github.com/rs/zerolog"
)

type SuggestionHandler struct {
	suggestionService *service.SuggestionService
	validator         *validation.Validator
}

func NewSuggestionHandler(suggestionService *service.SuggestionService, validator *validation.Validator) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		validator:         validator,
	}
}

// SuggestionQuery holds the optional ?limit= parameter. The query text itself
// is never rejected.
type SuggestionQuery struct {
	Limit *int `json:"limit" validate:"omitnil,min=0"`
}

// List answers ?q= with up to the configured number of candidates. An
// optional ?limit= may lower the cap but never raise it.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	query := r.URL.Query().Get("q")

	var params SuggestionQuery
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields := validation.FieldErrors{"limit": "must be a whole number"}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fields.Error(), Fields: fields})
			return
		}
		params.Limit = &n
	}

	if err := h.validator.Validate(params); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fieldErrs.Error(), Fields: fieldErrs})
			return
		}
		log.Error().Err(err).Str("handler", "suggestion.List").Msg("validation failed")
		writeError(w, http.StatusInternalServerError, "Failed to get suggestions")
		return
	}

	limit := h.suggestionService.DefaultLimit()
	if params.Limit != nil && *params.Limit < limit {
		limit = *params.Limit
	}

	suggestions, err := h.suggestionService.Suggest(r.Context(), query, limit)
	if err != nil {
		log.Error().Err(err).Str("handler", "suggestion.List").Msg("suggest failed")
		writeError(w, http.StatusInternalServerError, "Failed to get suggestions")
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}
