package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/prompts", s.handlePrompts)
		r.Post("/add-course-to-student", s.handleAddCourseToStudent)
		r.Get("/courses-summary", s.handleCoursesSummary)
		r.Get("/get-challenge-by-id/{id}", s.handleGetChallengeByID)
		r.Post("/get-challenge", s.handleGetChallenge)
		r.Post("/get-feedback", s.handleGetFeedback)
		r.Post("/register-challenge-stat", s.handleRegisterChallengeStat)
		r.Post("/rate-challenge", s.handleRateChallenge)
		r.Get("/company-metrics", s.handleCompanyMetrics)
	})

	return r
}
