package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sirius-edu/sirius/internal/errors"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func urlParamInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.NewBadRequestError(name + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

func formInt64(r *http.Request, name string) (int64, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return 0, errors.NewBadRequestError(name + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
