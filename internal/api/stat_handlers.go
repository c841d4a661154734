package api

import (
	"net/http"

	"github.com/sirius-edu/sirius/internal/services"
)

func (s *Server) handleRegisterChallengeStat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID   int64 `json:"student_id"`
		ChallengeID int64 `json:"challenge_id"`
		Skipped     bool  `json:"skipped"`
		Timeout     bool  `json:"timeout"`
		Moment      *int  `json:"moment"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	id, err := s.Stats.RegisterStat(r.Context(), services.RegisterStatInput{
		StudentID:   req.StudentID,
		ChallengeID: req.ChallengeID,
		Skipped:     req.Skipped,
		Timeout:     req.Timeout,
		Moment:      req.Moment,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleRateChallenge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID   int64 `json:"student_id"`
		ChallengeID int64 `json:"challenge_id"`
		Rating      int   `json:"rating"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Stats.RateChallenge(r.Context(), req.StudentID, req.ChallengeID, req.Rating); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"status": "ok"})
}

func (s *Server) handleCompanyMetrics(w http.ResponseWriter, r *http.Request) {
	studentID, err := queryInt64(r, "student_id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	metrics, err := s.Metrics.CompanyMetrics(r.Context(), studentID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}
