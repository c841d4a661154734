package api

import "net/http"

func (s *Server) handlePrompts(w http.ResponseWriter, r *http.Request) {
	templates, err := s.Templates.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
