package api

import "net/http"

func (s *Server) handleAddCourseToStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID int64 `json:"student_id"`
		CourseID  int64 `json:"course_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Courses.Enroll(r.Context(), req.StudentID, req.CourseID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"student_id": req.StudentID,
		"course_id":  req.CourseID,
	})
}

func (s *Server) handleCoursesSummary(w http.ResponseWriter, r *http.Request) {
	studentID, err := queryInt64(r, "student_id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	summaries, err := s.Courses.Summaries(r.Context(), studentID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}
