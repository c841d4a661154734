package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sirius-edu/sirius/internal/repository"
	"github.com/sirius-edu/sirius/internal/repository/sqlite"
	"github.com/sirius-edu/sirius/internal/schedule"
	"github.com/sirius-edu/sirius/internal/testutil"
)

type SpacedRepetitionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.SpacedRepetitionRepository
}

func (s *SpacedRepetitionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSpacedRepetitionRepository(s.db)
}

func (s *SpacedRepetitionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SpacedRepetitionRepositorySuite) setupStudentAndCourse() (int64, int64) {
	ctx := context.Background()

	res, err := s.db.ExecContext(ctx, `INSERT INTO students (name) VALUES (?)`, "Ana")
	s.Require().NoError(err)
	studentID, err := res.LastInsertId()
	s.Require().NoError(err)

	res, err = s.db.ExecContext(ctx, `INSERT INTO courses (title, transcript) VALUES (?, ?)`, "Go basics", "transcript")
	s.Require().NoError(err)
	courseID, err := res.LastInsertId()
	s.Require().NoError(err)

	return studentID, courseID
}

func (s *SpacedRepetitionRepositorySuite) TestGetByStudentCourse_Absent() {
	got, err := s.repo.GetByStudentCourse(context.Background(), 99, 99)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *SpacedRepetitionRepositorySuite) TestCreateIfAbsent_Idempotent() {
	ctx := context.Background()
	studentID, courseID := s.setupStudentAndCourse()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	sr := schedule.New(studentID, courseID, now)
	s.Require().NoError(s.repo.CreateIfAbsent(ctx, sr))

	// A second enrollment must not replace the existing schedule.
	later := schedule.New(studentID, courseID, now.Add(48*time.Hour))
	s.Require().NoError(s.repo.CreateIfAbsent(ctx, later))

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spaced_repetitions WHERE student_id = ? AND course_id = ?`, studentID, courseID).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	got, err := s.repo.GetByStudentCourse(ctx, studentID, courseID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(now.Add(schedule.Moment1Offset).Unix(), got.Moment1.Unix())
}

func (s *SpacedRepetitionRepositorySuite) TestSetCompleted() {
	ctx := context.Background()
	studentID, courseID := s.setupStudentAndCourse()

	s.Require().NoError(s.repo.CreateIfAbsent(ctx, schedule.New(studentID, courseID, time.Now())))
	got, err := s.repo.GetByStudentCourse(ctx, studentID, courseID)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Require().NoError(s.repo.SetCompleted(ctx, got.ID, 2))
	// Marking the same moment again is harmless.
	s.Require().NoError(s.repo.SetCompleted(ctx, got.ID, 2))

	got, err = s.repo.GetByStudentCourse(ctx, studentID, courseID)
	s.Require().NoError(err)
	s.Assert().False(got.IsCompleted1)
	s.Assert().True(got.IsCompleted2)
	s.Assert().False(got.IsCompleted3)
}

func (s *SpacedRepetitionRepositorySuite) TestSetCompleted_InvalidMoment() {
	err := s.repo.SetCompleted(context.Background(), 1, 5)
	s.Assert().Error(err)
}

func TestSpacedRepetitionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SpacedRepetitionRepositorySuite))
}
