// Package api is the HTTP surface: a thin JSON layer over the services.
// Handlers parse input, call one service method, and encode the result;
// no business logic lives here.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/Lyn1194/hsk1-app/internal/logger"
	"github.com/Lyn1194/hsk1-app/internal/services"
	"github.com/Lyn1194/hsk1-app/internal/vocab"
)

type Server struct {
	Catalog  *vocab.Catalog
	Profiles services.ProfileService
	Sessions services.SessionService
	Stats    services.StatsService
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
