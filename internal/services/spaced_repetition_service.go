package services

import (
	"context"
	"time"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
	"github.com/sirius-edu/sirius/internal/schedule"
)

// SpacedRepetitionService manages the review schedules created at enrollment
// time and updated as the student completes review moments.
type SpacedRepetitionService interface {
	// CreateForEnrollment builds and stores the schedule for a fresh
	// enrollment. Creating it again for the same pair is a no-op.
	CreateForEnrollment(ctx context.Context, studentID, courseID int64) error
	// MarkMoment completes one review moment. Returns nil without error when
	// the pair has no schedule; completing a moment twice is a no-op.
	MarkMoment(ctx context.Context, studentID, courseID int64, moment int) (*models.SpacedRepetition, error)
	Get(ctx context.Context, studentID, courseID int64) (*models.SpacedRepetition, error)
}

type spacedRepetitionService struct {
	repo repository.SpacedRepetitionRepository
	now  func() time.Time
}

// NewSpacedRepetitionService creates a new SpacedRepetitionService
func NewSpacedRepetitionService(repo repository.SpacedRepetitionRepository) SpacedRepetitionService {
	return &spacedRepetitionService{repo: repo, now: time.Now}
}

func (s *spacedRepetitionService) CreateForEnrollment(ctx context.Context, studentID, courseID int64) error {
	sr := schedule.New(studentID, courseID, s.now())
	if err := s.repo.CreateIfAbsent(ctx, sr); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *spacedRepetitionService) MarkMoment(ctx context.Context, studentID, courseID int64, moment int) (*models.SpacedRepetition, error) {
	log := logger.FromContext(ctx)

	sr, err := s.repo.GetByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if sr == nil {
		// Answers can arrive for courses enrolled before scheduling
		// existed; nothing to mark.
		log.Debug().
			Int64("student_id", studentID).
			Int64("course_id", courseID).
			Msg("no spaced repetition schedule for pair")
		return nil, nil
	}

	updated, err := schedule.MarkComplete(*sr, moment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.repo.SetCompleted(ctx, sr.ID, moment); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &updated, nil
}

func (s *spacedRepetitionService) Get(ctx context.Context, studentID, courseID int64) (*models.SpacedRepetition, error) {
	sr, err := s.repo.GetByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return sr, nil
}
