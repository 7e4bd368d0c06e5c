package api

import (
	"net/http"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/session"
)

// startRequest selects the content slice for a word-based session: one
// level, or every level at once.
type startRequest struct {
	Level int    `json:"level,omitempty"`
	Scope string `json:"scope,omitempty"`
}

func (req startRequest) toScope() (session.Scope, error) {
	if req.Scope == "all" {
		return session.ScopeAll(), nil
	}
	if req.Scope != "" {
		return session.Scope{}, errors.NewValidationError("scope", `must be "all" or omitted`)
	}
	level := models.Level(req.Level)
	if !level.Valid() {
		return session.Scope{}, errors.NewValidationError("level", "must be between 1 and 10")
	}
	return session.ScopeLevel(level), nil
}

func (s *Server) startWordSession(w http.ResponseWriter, r *http.Request, mode models.Mode) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	scope, err := req.toScope()
	if err != nil {
		handleError(w, r, err)
		return
	}

	snap, err := s.Sessions.Start(r.Context(), profile.ID, mode, scope)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, snap)
}

func (s *Server) handleStartFlashcards(w http.ResponseWriter, r *http.Request) {
	s.startWordSession(w, r, models.ModeFlashcard)
}

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	s.startWordSession(w, r, models.ModeQuiz)
}

func (s *Server) handleStartFinal(w http.ResponseWriter, r *http.Request) {
	s.startWordSession(w, r, models.ModeFinal)
}

func (s *Server) handleStartBonus(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	difficulty := models.Difficulty(req.Difficulty)
	if !difficulty.Valid() {
		handleError(w, r, errors.NewValidationError("difficulty", "must be easy, medium, or hard"))
		return
	}

	snap, err := s.Sessions.Start(r.Context(), profile.ID, models.ModeBonus, session.ScopeDifficulty(difficulty))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, snap)
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	snap, err := s.Sessions.Current(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	var req struct {
		Choice      *int   `json:"choice,omitempty"`
		Text        string `json:"text,omitempty"`
		SelfCorrect bool   `json:"self_correct,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	answer := session.Answer{Text: req.Text, SelfCorrect: req.SelfCorrect, Choice: -1}
	if req.Choice != nil {
		answer.Choice = *req.Choice
	}

	snap, err := s.Sessions.SubmitAnswer(r.Context(), profile.ID, answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) sessionAction(w http.ResponseWriter, r *http.Request,
	action func(profileID int64) (*models.SessionSnapshot, error)) {
	profile := profileFromContext(r.Context())
	if profile == nil {
		handleError(w, r, errors.NewUnauthorizedError("no profile selected"))
		return
	}

	snap, err := action(profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.sessionAction(w, r, func(profileID int64) (*models.SessionSnapshot, error) {
		return s.Sessions.Advance(r.Context(), profileID)
	})
}

func (s *Server) handleRetreat(w http.ResponseWriter, r *http.Request) {
	s.sessionAction(w, r, func(profileID int64) (*models.SessionSnapshot, error) {
		return s.Sessions.Retreat(r.Context(), profileID)
	})
}

func (s *Server) handleReshuffle(w http.ResponseWriter, r *http.Request) {
	s.sessionAction(w, r, func(profileID int64) (*models.SessionSnapshot, error) {
		return s.Sessions.Reshuffle(r.Context(), profileID)
	})
}
