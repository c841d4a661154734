// Package api exposes the HTTP surface. Handlers parse and validate the
// request shape, delegate to services, and render JSON; all domain rules live
// below this layer.
package api

import (
	"github.com/rs/zerolog"

	"github.com/sirius-edu/sirius/internal/services"
)

// Server holds the wired services behind the HTTP handlers.
type Server struct {
	Challenges services.ChallengeService
	Courses    services.CourseService
	Stats      services.StatsService
	Metrics    services.MetricsService
	Templates  services.TemplateService

	Log zerolog.Logger
	// MaxAudioBytes caps multipart memory when parsing feedback uploads.
	MaxAudioBytes int64
}
