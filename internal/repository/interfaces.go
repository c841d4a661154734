package repository

import (
	"context"

	"github.com/sirius-edu/sirius/internal/models"
)

// PromptTemplateRepository handles stored prompt template access
type PromptTemplateRepository interface {
	// GetByKind returns the single active template for a kind.
	// Exactly one template per kind is expected; a miss is an error.
	GetByKind(ctx context.Context, kind models.PromptKind) (*models.PromptTemplate, error)
	List(ctx context.Context) ([]models.PromptTemplate, error)
}

// CourseRepository handles course data access
type CourseRepository interface {
	Get(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Materials(ctx context.Context, courseID int64) ([]models.Material, error)
}

// StudentRepository handles student data access, including the enrollment
// and attempted-challenges many-to-many relations
type StudentRepository interface {
	Get(ctx context.Context, id int64) (*models.Student, error)
	Enroll(ctx context.Context, studentID, courseID int64) error
	EnrolledCourseIDs(ctx context.Context, studentID int64) ([]int64, error)
	AttemptedChallengeIDs(ctx context.Context, studentID int64) ([]int64, error)
	AddAttemptedChallenge(ctx context.Context, studentID, challengeID int64) error
}

// ChallengeRepository handles challenge data access
type ChallengeRepository interface {
	Get(ctx context.Context, id int64) (*models.Challenge, error)
	// FirstUnattempted returns the lowest-level challenge of the course whose
	// id is not in excludeIDs, or nil when none remains. Ties on level break
	// by creation order (id ascending).
	FirstUnattempted(ctx context.Context, courseID int64, excludeIDs []int64) (*models.Challenge, error)
	Insert(ctx context.Context, c models.Challenge) (int64, error)
	UpdateName(ctx context.Context, id int64, name string) error
	CountByCourse(ctx context.Context, courseID int64) (int, error)
}

// StatRepository handles challenge statistics and ratings
type StatRepository interface {
	Insert(ctx context.Context, stat models.ChallengeStat) (int64, error)
	InsertRating(ctx context.Context, rating models.ChallengeRating) (int64, error)
	// List returns stat rows joined with student and challenge metadata.
	// companyID filters to students of that company; nil means all students.
	List(ctx context.Context, companyID *int64) ([]models.ChallengeStatDetail, error)
}

// SpacedRepetitionRepository handles spaced repetition schedules
type SpacedRepetitionRepository interface {
	// GetByStudentCourse returns the live schedule for the pair, or nil when
	// none exists.
	GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.SpacedRepetition, error)
	// CreateIfAbsent inserts the schedule unless one already exists for the
	// pair, keeping the at-most-one-record invariant under concurrent inserts.
	CreateIfAbsent(ctx context.Context, sr models.SpacedRepetition) error
	SetCompleted(ctx context.Context, id int64, moment int) error
}

// ProgressRepository handles per-(student, course) progress records
type ProgressRepository interface {
	// GetOrCreate returns the progress record for the pair, lazily creating
	// it with default values on first use.
	GetOrCreate(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error)
	GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error)
}
