package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/logger"
)

// handleError centralizes error rendering. Every error becomes
// {"error": {"code", "message"}} with the AppError status; unknown errors are
// wrapped as internal errors so no raw detail leaks to clients.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error().Err(appErr).Msg("server error")
	} else {
		log.Warn().Err(appErr).Msg("client error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
