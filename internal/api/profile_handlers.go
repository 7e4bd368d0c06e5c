package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/logger"
)

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.Profiles.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := s.Profiles.CreateProfile(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusCreated, profile)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.Profiles.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.Profiles.TouchProfile(r.Context(), id); err != nil {
		logger.FromContext(r.Context()).Warn("failed to update last seen: %v", err)
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.Profiles.GetProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.Profiles.DeleteProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	clearProfileCookie(w)
	respondJSON(w, r, http.StatusOK, map[string]any{"deleted": id})
}

func profileIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid profile id")
	}
	return id, nil
}
