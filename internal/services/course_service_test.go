package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/services"
	"github.com/sirius-edu/sirius/internal/testutil/mocks"
)

type courseServiceMocks struct {
	students   *mocks.MockStudentRepository
	courses    *mocks.MockCourseRepository
	challenges *mocks.MockChallengeRepository
	progress   *mocks.MockProgressRepository
	spaced     *mocks.MockSpacedRepetitionRepository
}

func newCourseService() (services.CourseService, *courseServiceMocks) {
	m := &courseServiceMocks{
		students:   new(mocks.MockStudentRepository),
		courses:    new(mocks.MockCourseRepository),
		challenges: new(mocks.MockChallengeRepository),
		progress:   new(mocks.MockProgressRepository),
		spaced:     new(mocks.MockSpacedRepetitionRepository),
	}
	svc := services.NewCourseService(
		m.students,
		m.courses,
		m.challenges,
		m.progress,
		services.NewSpacedRepetitionService(m.spaced),
	)
	return svc, m
}

func TestEnroll_CreatesSchedule(t *testing.T) {
	ctx := context.Background()
	svc, m := newCourseService()

	m.students.On("Get", ctx, int64(1)).Return(&models.Student{ID: 1}, nil)
	m.courses.On("Get", ctx, int64(3)).Return(&models.Course{ID: 3}, nil)
	m.students.On("Enroll", ctx, int64(1), int64(3)).Return(nil)
	m.spaced.On("CreateIfAbsent", ctx, mock.MatchedBy(func(sr models.SpacedRepetition) bool {
		return sr.StudentID == 1 && sr.CourseID == 3 &&
			!sr.IsCompleted1 && !sr.IsCompleted2 && !sr.IsCompleted3
	})).Return(nil)

	require.NoError(t, svc.Enroll(ctx, 1, 3))
	m.spaced.AssertCalled(t, "CreateIfAbsent", ctx, mock.Anything)
}

func TestEnroll_CourseNotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newCourseService()

	m.students.On("Get", ctx, int64(1)).Return(&models.Student{ID: 1}, nil)
	m.courses.On("Get", ctx, int64(3)).Return(nil, sql.ErrNoRows)

	err := svc.Enroll(ctx, 1, 3)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErrCode(t, err))
	m.students.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaries(t *testing.T) {
	ctx := context.Background()
	svc, m := newCourseService()

	m.students.On("Get", ctx, int64(1)).Return(&models.Student{ID: 1}, nil)
	m.students.On("EnrolledCourseIDs", ctx, int64(1)).Return([]int64{3, 4}, nil)
	m.courses.On("Get", ctx, int64(3)).Return(&models.Course{ID: 3, Title: "Go basics"}, nil)
	m.courses.On("Get", ctx, int64(4)).Return(&models.Course{ID: 4, Title: "SQL"}, nil)
	m.challenges.On("CountByCourse", ctx, int64(3)).Return(12, nil)
	m.challenges.On("CountByCourse", ctx, int64(4)).Return(0, nil)
	m.progress.On("GetByStudentCourse", ctx, int64(1), int64(3)).
		Return(&models.StudentProgress{StudentID: 1, CourseID: 3, CourseProgress: 50}, nil)
	m.progress.On("GetByStudentCourse", ctx, int64(1), int64(4)).Return(nil, nil)

	got, err := svc.Summaries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Go basics", got[0].Course.Title)
	assert.Equal(t, 12, got[0].ChallengeCount)
	require.NotNil(t, got[0].Progress)
	assert.Equal(t, 50, got[0].Progress.CourseProgress)

	assert.Equal(t, "SQL", got[1].Course.Title)
	assert.Nil(t, got[1].Progress)
}

func TestMarkMoment_NoScheduleIsNoOp(t *testing.T) {
	ctx := context.Background()
	spaced := new(mocks.MockSpacedRepetitionRepository)
	svc := services.NewSpacedRepetitionService(spaced)

	spaced.On("GetByStudentCourse", ctx, int64(1), int64(3)).Return(nil, nil)

	got, err := svc.MarkMoment(ctx, 1, 3, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
	spaced.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
}
