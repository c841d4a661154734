package services

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

// CourseService handles enrollment and the per-student course overview.
type CourseService interface {
	// Enroll links the student to the course and creates the review
	// schedule. Enrolling twice is a no-op.
	Enroll(ctx context.Context, studentID, courseID int64) error
	// Summaries returns every course the student is enrolled in, with the
	// challenge count and the student's progress when one exists.
	Summaries(ctx context.Context, studentID int64) ([]models.CourseSummary, error)
}

type courseService struct {
	students   repository.StudentRepository
	courses    repository.CourseRepository
	challenges repository.ChallengeRepository
	progress   repository.ProgressRepository
	spaced     SpacedRepetitionService
}

// NewCourseService creates a new CourseService
func NewCourseService(
	students repository.StudentRepository,
	courses repository.CourseRepository,
	challenges repository.ChallengeRepository,
	progress repository.ProgressRepository,
	spaced SpacedRepetitionService,
) CourseService {
	return &courseService{
		students:   students,
		courses:    courses,
		challenges: challenges,
		progress:   progress,
		spaced:     spaced,
	}
}

func (s *courseService) Enroll(ctx context.Context, studentID, courseID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.students.Get(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("student", studentID)
		}
		return errors.NewInternalError(err)
	}
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("course", courseID)
		}
		return errors.NewInternalError(err)
	}

	if err := s.students.Enroll(ctx, studentID, courseID); err != nil {
		return errors.NewInternalError(err)
	}
	if err := s.spaced.CreateForEnrollment(ctx, studentID, courseID); err != nil {
		return err
	}

	log.Info().Int64("student_id", studentID).Int64("course_id", courseID).Msg("student enrolled")
	return nil
}

func (s *courseService) Summaries(ctx context.Context, studentID int64) ([]models.CourseSummary, error) {
	if _, err := s.students.Get(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", studentID)
		}
		return nil, errors.NewInternalError(err)
	}

	courseIDs, err := s.students.EnrolledCourseIDs(ctx, studentID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	summaries := make([]models.CourseSummary, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		course, err := s.courses.Get(ctx, courseID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		count, err := s.challenges.CountByCourse(ctx, courseID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		progress, err := s.progress.GetByStudentCourse(ctx, studentID, courseID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		summaries = append(summaries, models.CourseSummary{
			Course:         *course,
			ChallengeCount: count,
			Progress:       progress,
		})
	}
	return summaries, nil
}
