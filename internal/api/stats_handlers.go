package api

import (
	"net/http"
	"strconv"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
)

func (s *Server) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	overview, err := s.Stats.Overview(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleStatsLevels(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	levels, err := s.Stats.Levels(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"levels": levels})
}

func (s *Server) handleStatsAchievements(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	achievements, err := s.Stats.Achievements(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"achievements": achievements})
}

func (s *Server) handleStatsHistory(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	q := r.URL.Query()
	filter := models.SessionResultFilter{
		ProfileID: profile.ID,
		Mode:      models.Mode(q.Get("mode")),
		Scope:     q.Get("scope"),
	}
	if filter.Mode != "" && !filter.Mode.Valid() {
		handleError(w, r, errors.NewValidationError("mode", "must be flashcard, quiz, final, or bonus"))
		return
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	results, err := s.Stats.History(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleStatsReset(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	if err := s.Stats.Reset(r.Context(), profile.ID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"reset": true})
}
