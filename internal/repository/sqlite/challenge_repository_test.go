package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
	"github.com/sirius-edu/sirius/internal/repository/sqlite"
	"github.com/sirius-edu/sirius/internal/testutil"
)

type ChallengeRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ChallengeRepository
}

func (s *ChallengeRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewChallengeRepository(s.db)
}

func (s *ChallengeRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ChallengeRepositorySuite) setupCourse() int64 {
	ctx := context.Background()

	res, err := s.db.ExecContext(ctx, `INSERT INTO courses (title, transcript) VALUES (?, ?)`, "Go basics", "transcript")
	s.Require().NoError(err)
	courseID, err := res.LastInsertId()
	s.Require().NoError(err)
	return courseID
}

func (s *ChallengeRepositorySuite) insertChallenge(courseID int64, level int) int64 {
	id, err := s.repo.Insert(context.Background(), models.Challenge{
		CourseID:         courseID,
		Text:             `{"challenge":"do the thing"}`,
		Level:            level,
		EstimatedMinutes: 10,
	})
	s.Require().NoError(err)
	return id
}

func (s *ChallengeRepositorySuite) TestFirstUnattempted_LowestLevelFirst() {
	ctx := context.Background()
	courseID := s.setupCourse()

	s.insertChallenge(courseID, 3)
	wantID := s.insertChallenge(courseID, 1)
	s.insertChallenge(courseID, 2)

	got, err := s.repo.FirstUnattempted(ctx, courseID, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(wantID, got.ID)
	s.Assert().Equal(1, got.Level)
}

func (s *ChallengeRepositorySuite) TestFirstUnattempted_TieBreaksByID() {
	ctx := context.Background()
	courseID := s.setupCourse()

	first := s.insertChallenge(courseID, 2)
	s.insertChallenge(courseID, 2)

	got, err := s.repo.FirstUnattempted(ctx, courseID, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(first, got.ID)
}

func (s *ChallengeRepositorySuite) TestFirstUnattempted_SkipsExcluded() {
	ctx := context.Background()
	courseID := s.setupCourse()

	first := s.insertChallenge(courseID, 1)
	second := s.insertChallenge(courseID, 2)

	got, err := s.repo.FirstUnattempted(ctx, courseID, []int64{first})
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(second, got.ID)
}

func (s *ChallengeRepositorySuite) TestFirstUnattempted_ExhaustedPool() {
	ctx := context.Background()
	courseID := s.setupCourse()

	only := s.insertChallenge(courseID, 1)

	got, err := s.repo.FirstUnattempted(ctx, courseID, []int64{only})
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ChallengeRepositorySuite) TestFirstUnattempted_IgnoresOtherCourses() {
	ctx := context.Background()
	courseID := s.setupCourse()
	otherCourseID := s.setupCourse()
	s.insertChallenge(otherCourseID, 1)

	got, err := s.repo.FirstUnattempted(ctx, courseID, nil)
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ChallengeRepositorySuite) TestInsertAndUpdateName() {
	ctx := context.Background()
	courseID := s.setupCourse()

	id := s.insertChallenge(courseID, 1)
	s.Assert().Greater(id, int64(0))

	err := s.repo.UpdateName(ctx, id, "challenge 1 Go basics")
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("challenge 1 Go basics", got.Name)
	s.Assert().Equal(courseID, got.CourseID)
}

func (s *ChallengeRepositorySuite) TestCountByCourse() {
	ctx := context.Background()
	courseID := s.setupCourse()
	s.insertChallenge(courseID, 1)
	s.insertChallenge(courseID, 2)

	count, err := s.repo.CountByCourse(ctx, courseID)
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func TestChallengeRepositorySuite(t *testing.T) {
	suite.Run(t, new(ChallengeRepositorySuite))
}
