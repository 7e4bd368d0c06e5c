package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
)

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	type levelSummary struct {
		Level     models.Level `json:"level"`
		WordCount int          `json:"word_count"`
	}

	levels := make([]levelSummary, 0, models.LevelCount)
	for _, lvl := range s.Catalog.Levels() {
		words, err := s.Catalog.Words(lvl)
		if err != nil {
			handleError(w, r, err)
			return
		}
		levels = append(levels, levelSummary{Level: lvl, WordCount: len(words)})
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"levels": levels})
}

func (s *Server) handleLevelWords(w http.ResponseWriter, r *http.Request) {
	levelStr := chi.URLParam(r, "level")
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid level"))
		return
	}

	words, err := s.Catalog.Words(models.Level(level))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"level": level, "words": words})
}

func (s *Server) handleWordOfDay(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Catalog.WordOfDay(time.Now()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"status": "ok"})
}
