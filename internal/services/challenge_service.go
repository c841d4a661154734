package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/sirius-edu/sirius/internal/answer"
	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/llm"
	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/prompt"
	"github.com/sirius-edu/sirius/internal/repository"
)

// FeedbackInput carries one answer submission.
type FeedbackInput struct {
	StudentID   int64
	ChallengeID int64
	AnswerType  answer.Type
	AnswerText  string
	AnswerAudio *answer.Upload
	// Moment, when set, marks the corresponding spaced-repetition
	// checkpoint complete after the feedback is stored.
	Moment *int
}

// ChallengeService drives the challenge/feedback pipeline: serving the next
// challenge for a student (generating one when the course pool is exhausted)
// and producing feedback for submitted answers.
type ChallengeService interface {
	GetChallenge(ctx context.Context, studentID, courseID int64) (*models.Challenge, error)
	GetChallengeByID(ctx context.Context, challengeID int64) (*models.Challenge, error)
	// GetFeedback normalizes the answer and generates feedback. Once
	// generation has succeeded the feedback is returned even if the
	// follow-up stat or spaced-repetition writes fail; those are
	// best-effort and only logged.
	GetFeedback(ctx context.Context, in FeedbackInput) (*models.Feedback, error)
}

type challengeService struct {
	students   repository.StudentRepository
	courses    repository.CourseRepository
	challenges repository.ChallengeRepository
	templates  repository.PromptTemplateRepository
	progress   repository.ProgressRepository
	stats      repository.StatRepository
	spaced     SpacedRepetitionService
	provider   llm.Provider
	normalizer *answer.Normalizer

	// generateGroup collapses concurrent generation for the same
	// (student, course) pair so two requests that both see an empty pool
	// cannot persist two duplicate challenges.
	generateGroup singleflight.Group
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(
	students repository.StudentRepository,
	courses repository.CourseRepository,
	challenges repository.ChallengeRepository,
	templates repository.PromptTemplateRepository,
	progress repository.ProgressRepository,
	stats repository.StatRepository,
	spaced SpacedRepetitionService,
	provider llm.Provider,
	normalizer *answer.Normalizer,
) ChallengeService {
	return &challengeService{
		students:   students,
		courses:    courses,
		challenges: challenges,
		templates:  templates,
		progress:   progress,
		stats:      stats,
		spaced:     spaced,
		provider:   provider,
		normalizer: normalizer,
	}
}

func (s *challengeService) GetChallenge(ctx context.Context, studentID, courseID int64) (*models.Challenge, error) {
	log := logger.FromContext(ctx)

	if _, err := s.students.Get(ctx, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", studentID)
		}
		return nil, errors.NewInternalError(err)
	}
	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("course", courseID)
		}
		return nil, errors.NewInternalError(err)
	}

	attempted, err := s.students.AttemptedChallengeIDs(ctx, studentID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	challenge, err := s.challenges.FirstUnattempted(ctx, courseID, attempted)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if challenge != nil {
		log.Debug().
			Int64("challenge_id", challenge.ID).
			Int("level", challenge.Level).
			Msg("serving existing challenge")
		return challenge, nil
	}

	// Pool exhausted: generate. Single flight per pair keeps the
	// read-generate-persist sequence from running twice concurrently.
	key := fmt.Sprintf("%d:%d", studentID, courseID)
	v, err, _ := s.generateGroup.Do(key, func() (interface{}, error) {
		// Re-check inside the critical section: a concurrent call may
		// have just persisted a generated challenge for this pair.
		attempted, err := s.students.AttemptedChallengeIDs(ctx, studentID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		existing, err := s.challenges.FirstUnattempted(ctx, courseID, attempted)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if existing != nil {
			return existing, nil
		}
		return s.generateChallenge(ctx, studentID, course)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Challenge), nil
}

func (s *challengeService) generateChallenge(ctx context.Context, studentID int64, course *models.Course) (*models.Challenge, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(course.Transcript) == "" {
		// A course without a transcript is a data problem, not a
		// pipeline bug.
		return nil, errors.NewValidationError("Course has no transcript")
	}

	progress, err := s.progress.GetOrCreate(ctx, studentID, course.ID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	template, err := s.templates.GetByKind(ctx, models.PromptChallenge)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("challenge template lookup: %w", err))
	}

	p := prompt.BuildChallenge(template.Text, prompt.ChallengeContext{
		Transcript:         course.Transcript,
		CourseProgress:     progress.CourseProgress,
		LastChallengeLevel: progress.LastChallengeLevel,
	})

	raw, err := s.provider.GenerateText(ctx, p, llm.SchemaChallenge)
	if err != nil {
		log.Error().Err(err).Int64("course_id", course.ID).Msg("challenge generation failed")
		return nil, errors.NewGenerationError("challenge", err)
	}

	var payload models.ChallengeText
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || strings.TrimSpace(payload.Challenge) == "" {
		log.Error().Err(err).Msg("challenge generation returned an unusable payload")
		return nil, errors.NewGenerationError("challenge", err)
	}
	// Persist the re-encoded payload, not the raw response, so stored rows
	// carry only the known keys in canonical form.
	text, err := payload.Encode()
	if err != nil {
		return nil, errors.NewGenerationError("challenge", err)
	}

	estimated := payload.EstimatedSolutionTime
	if estimated <= 0 {
		estimated = 10
	}

	challenge := models.Challenge{
		CourseID:         course.ID,
		Text:             text,
		Level:            progress.LastChallengeLevel,
		EstimatedMinutes: estimated,
	}
	id, err := s.challenges.Insert(ctx, challenge)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	challenge.ID = id
	challenge.Name = fmt.Sprintf("challenge %d %s", id, course.Title)
	if err := s.challenges.UpdateName(ctx, id, challenge.Name); err != nil {
		log.Warn().Err(err).Int64("challenge_id", id).Msg("failed to set generated challenge name")
	}

	log.Info().Int64("challenge_id", id).Int64("course_id", course.ID).Msg("generated new challenge")
	return &challenge, nil
}

func (s *challengeService) GetChallengeByID(ctx context.Context, challengeID int64) (*models.Challenge, error) {
	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("challenge", challengeID)
		}
		return nil, errors.NewInternalError(err)
	}
	return challenge, nil
}

func (s *challengeService) GetFeedback(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	log := logger.FromContext(ctx)

	if _, err := s.students.Get(ctx, in.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", in.StudentID)
		}
		return nil, errors.NewInternalError(err)
	}
	challenge, err := s.challenges.Get(ctx, in.ChallengeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("challenge", in.ChallengeID)
		}
		return nil, errors.NewInternalError(err)
	}
	if in.Moment != nil && (*in.Moment < 1 || *in.Moment > 3) {
		return nil, errors.NewValidationError("Invalid moment. Must be 1, 2, or 3.")
	}

	// Transcription (for audio answers) must finish before the feedback
	// prompt is built.
	answerText, err := s.normalizer.Normalize(ctx, in.AnswerType, in.AnswerText, in.AnswerAudio)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetByKind(ctx, models.PromptFeedback)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("feedback template lookup: %w", err))
	}
	materials, err := s.courses.Materials(ctx, challenge.CourseID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	p := prompt.BuildFeedback(template.Text, prompt.FeedbackContext{
		ChallengeText: challenge.Text,
		AnswerText:    answerText,
		Materials:     materials,
	})

	raw, err := s.provider.GenerateText(ctx, p, llm.SchemaFeedback)
	if err != nil {
		log.Error().Err(err).Int64("challenge_id", in.ChallengeID).Msg("feedback generation failed")
		return nil, errors.NewGenerationError("feedback", err)
	}

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
		log.Error().Err(err).Msg("feedback generation returned an unusable payload")
		return nil, errors.NewGenerationError("feedback", err)
	}

	// The attempt is recorded only after generation succeeded, so a failed
	// submission can be retried against the same challenge.
	if err := s.students.AddAttemptedChallenge(ctx, in.StudentID, in.ChallengeID); err != nil {
		return nil, errors.NewInternalError(err)
	}

	score := feedback.ScoreAverage
	if _, err := s.stats.Insert(ctx, models.ChallengeStat{
		StudentID:   in.StudentID,
		ChallengeID: in.ChallengeID,
		Score:       &score,
		Moment:      in.Moment,
	}); err != nil {
		// Stats are best-effort; the feedback itself already succeeded.
		log.Warn().Err(err).Msg("failed to store challenge stat")
	}

	if in.Moment != nil {
		if _, err := s.spaced.MarkMoment(ctx, in.StudentID, challenge.CourseID, *in.Moment); err != nil {
			log.Warn().Err(err).Int("moment", *in.Moment).Msg("failed to mark spaced repetition moment")
		}
	}

	return &feedback, nil
}
