package api_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sirius-edu/sirius/internal/api"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/services"
	"github.com/sirius-edu/sirius/internal/testutil/mocks"
)

type serverMocks struct {
	students   *mocks.MockStudentRepository
	challenges *mocks.MockChallengeRepository
	stats      *mocks.MockStatRepository
}

func newTestServer(t *testing.T) (*api.Server, *serverMocks) {
	t.Helper()

	m := &serverMocks{
		students:   new(mocks.MockStudentRepository),
		challenges: new(mocks.MockChallengeRepository),
		stats:      new(mocks.MockStatRepository),
	}
	courses := new(mocks.MockCourseRepository)
	templates := new(mocks.MockPromptTemplateRepository)
	progress := new(mocks.MockProgressRepository)
	spacedRepo := new(mocks.MockSpacedRepetitionRepository)
	spaced := services.NewSpacedRepetitionService(spacedRepo)

	return &api.Server{
		Challenges: services.NewChallengeService(
			m.students, courses, m.challenges, templates,
			progress, m.stats, spaced, nil, nil,
		),
		Courses:       services.NewCourseService(m.students, courses, m.challenges, progress, spaced),
		Stats:         services.NewStatsService(m.students, m.challenges, m.stats),
		Metrics:       services.NewMetricsService(m.students, m.stats),
		Templates:     services.NewTemplateService(templates),
		Log:           zerolog.Nop(),
		MaxAudioBytes: 1 << 20,
	}, m
}

func TestGetChallengeByID(t *testing.T) {
	srv, m := newTestServer(t)
	m.challenges.On("Get", mock.Anything, int64(5)).Return(&models.Challenge{
		ID:               5,
		CourseID:         3,
		Name:             "challenge 5 Go basics",
		Text:             `{"challenge":"implement a queue","hints":["use a slice"]}`,
		Level:            2,
		EstimatedMinutes: 15,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-challenge-by-id/5", nil)
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID        int64 `json:"id"`
		Challenge struct {
			Challenge string   `json:"challenge"`
			Hints     []string `json:"hints"`
		} `json:"challenge"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, "implement a queue", body.Challenge.Challenge)
	assert.Equal(t, []string{"use a slice"}, body.Challenge.Hints)
}

func TestGetChallengeByID_NotFound(t *testing.T) {
	srv, m := newTestServer(t)
	m.challenges.On("Get", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-challenge-by-id/99", nil)
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestRegisterChallengeStat_RejectsBothFlags(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register-challenge-stat",
		strings.NewReader(`{"student_id":1,"challenge_id":5,"skipped":true,"timeout":true}`))
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCoursesSummary_RequiresStudentID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses-summary", nil)
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "student_id is required")
}
