package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(requestTimeout))
	r.Use(s.profileMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/profiles", s.handleListProfiles)
		r.Post("/profiles", s.handleCreateProfile)
		r.Post("/profiles/{id}/select", s.handleSelectProfile)
		r.Post("/profiles/{id}/delete", s.handleDeleteProfile)

		r.Get("/levels", s.handleLevels)
		r.Get("/levels/{level}/words", s.handleLevelWords)
		r.Get("/word-of-day", s.handleWordOfDay)

		r.Post("/session/flashcards", s.handleStartFlashcards)
		r.Post("/session/quiz", s.handleStartQuiz)
		r.Post("/session/final", s.handleStartFinal)
		r.Post("/session/bonus", s.handleStartBonus)
		r.Get("/session", s.handleCurrentSession)
		r.Post("/session/answer", s.handleSubmitAnswer)
		r.Post("/session/advance", s.handleAdvance)
		r.Post("/session/retreat", s.handleRetreat)
		r.Post("/session/reshuffle", s.handleReshuffle)

		r.Get("/stats", s.handleStatsOverview)
		r.Get("/stats/levels", s.handleStatsLevels)
		r.Get("/stats/achievements", s.handleStatsAchievements)
		r.Get("/stats/history", s.handleStatsHistory)
		r.Post("/stats/reset", s.handleStatsReset)
	})

	return r
}
