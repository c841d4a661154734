package services

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

// RegisterStatInput records a skip or a timeout for a challenge the student
// abandoned. Scored attempts are recorded by the feedback flow instead.
type RegisterStatInput struct {
	StudentID   int64
	ChallengeID int64
	Skipped     bool
	Timeout     bool
	Moment      *int
}

// StatsService records skip/timeout events and challenge ratings.
type StatsService interface {
	RegisterStat(ctx context.Context, in RegisterStatInput) (int64, error)
	RateChallenge(ctx context.Context, studentID, challengeID int64, rating int) error
}

type statsService struct {
	students   repository.StudentRepository
	challenges repository.ChallengeRepository
	stats      repository.StatRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	students repository.StudentRepository,
	challenges repository.ChallengeRepository,
	stats repository.StatRepository,
) StatsService {
	return &statsService{students: students, challenges: challenges, stats: stats}
}

func (s *statsService) RegisterStat(ctx context.Context, in RegisterStatInput) (int64, error) {
	if in.Skipped == in.Timeout {
		// Exactly one of the two flags must be set.
		return 0, errors.NewValidationError("Exactly one of skipped or timeout must be true")
	}
	if in.Moment != nil && (*in.Moment < 1 || *in.Moment > 3) {
		return 0, errors.NewValidationError("Invalid moment. Must be 1, 2, or 3.")
	}
	if err := s.checkPair(ctx, in.StudentID, in.ChallengeID); err != nil {
		return 0, err
	}

	id, err := s.stats.Insert(ctx, models.ChallengeStat{
		StudentID:   in.StudentID,
		ChallengeID: in.ChallengeID,
		Skipped:     in.Skipped,
		Timeout:     in.Timeout,
		Moment:      in.Moment,
	})
	if err != nil {
		return 0, errors.NewInternalError(err)
	}
	return id, nil
}

func (s *statsService) RateChallenge(ctx context.Context, studentID, challengeID int64, rating int) error {
	if rating < 0 || rating > 10 {
		return errors.NewValidationError("Rating must be between 0 and 10")
	}
	if err := s.checkPair(ctx, studentID, challengeID); err != nil {
		return err
	}

	if _, err := s.stats.InsertRating(ctx, models.ChallengeRating{
		StudentID:   studentID,
		ChallengeID: challengeID,
		Rating:      rating,
	}); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *statsService) checkPair(ctx context.Context, studentID, challengeID int64) error {
	if _, err := s.students.Get(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("student", studentID)
		}
		return errors.NewInternalError(err)
	}
	if _, err := s.challenges.Get(ctx, challengeID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("challenge", challengeID)
		}
		return errors.NewInternalError(err)
	}
	return nil
}
