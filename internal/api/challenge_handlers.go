package api

import (
	"net/http"
	"strconv"

	"github.com/sirius-edu/sirius/internal/answer"
	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/services"
)

// challengeResponse is the wire shape of a challenge: metadata plus the
// parsed payload.
type challengeResponse struct {
	ID               int64                `json:"id"`
	CourseID         int64                `json:"course_id"`
	Name             string               `json:"name"`
	Level            int                  `json:"level"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	Challenge        models.ChallengeText `json:"challenge"`
}

func toChallengeResponse(c *models.Challenge) challengeResponse {
	return challengeResponse{
		ID:               c.ID,
		CourseID:         c.CourseID,
		Name:             c.Name,
		Level:            c.Level,
		EstimatedMinutes: c.EstimatedMinutes,
		Challenge:        models.ParseChallengeText(c.Text),
	}
}

func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID int64 `json:"student_id"`
		CourseID  int64 `json:"course_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	challenge, err := s.Challenges.GetChallenge(r.Context(), req.StudentID, req.CourseID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toChallengeResponse(challenge))
}

func (s *Server) handleGetChallengeByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt64(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	challenge, err := s.Challenges.GetChallengeByID(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toChallengeResponse(challenge))
}

// handleGetFeedback accepts a multipart form: student_id, challenge_id,
// answer_type (text/code/audio), answer_text, optional moment, and an
// answer_audio file part for audio answers.
func (s *Server) handleGetFeedback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.MaxAudioBytes); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid multipart form"))
		return
	}

	studentID, err := formInt64(r, "student_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	challengeID, err := formInt64(r, "challenge_id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	answerType := answer.Type(r.FormValue("answer_type"))
	if !answer.ValidType(answerType) {
		handleError(w, r, errors.NewValidationError("Invalid answer type"))
		return
	}

	in := services.FeedbackInput{
		StudentID:   studentID,
		ChallengeID: challengeID,
		AnswerType:  answerType,
		AnswerText:  r.FormValue("answer_text"),
	}

	if raw := r.FormValue("moment"); raw != "" {
		moment, err := strconv.Atoi(raw)
		if err != nil || moment < 1 || moment > 3 {
			handleError(w, r, errors.NewValidationError("Invalid moment. Must be 1, 2, or 3."))
			return
		}
		in.Moment = &moment
	}

	if file, header, err := r.FormFile("answer_audio"); err == nil {
		defer file.Close()
		in.AnswerAudio = &answer.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	feedback, err := s.Challenges.GetFeedback(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, feedback)
}
