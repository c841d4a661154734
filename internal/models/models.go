package models

import "time"

// PromptKind selects which stored prompt template a generation uses.
type PromptKind string

const (
	PromptChallenge PromptKind = "CH"
	PromptFeedback  PromptKind = "FE"
	PromptConfig    PromptKind = "CO"
)

type PromptTemplate struct {
	ID        int64      `json:"id"`
	Kind      PromptKind `json:"kind"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Transcript  string    `json:"transcript"`
	CreatedAt   time.Time `json:"created_at"`
}

// Material is a suggested study resource attached to a course.
type Material struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Name     string `json:"name"`
	Link     string `json:"link"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CompanyID *int64    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Challenge struct {
	ID               int64     `json:"id"`
	CourseID         int64     `json:"course_id"`
	Name             string    `json:"name"`
	Text             string    `json:"text"` // JSON payload, see ChallengeText
	Level            int       `json:"level"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

// ChallengeStat is one row per (student, challenge) attempt. Score is nil for
// skip/timeout registrations, which must set exactly one of Skipped/Timeout.
type ChallengeStat struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	ChallengeID int64     `json:"challenge_id"`
	Score       *float64  `json:"score"`
	Skipped     bool      `json:"skipped"`
	Timeout     bool      `json:"timeout"`
	Moment      *int      `json:"moment"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChallengeStatDetail joins a stat row with the metadata the metrics
// aggregation needs.
type ChallengeStatDetail struct {
	ChallengeStat
	StudentName      string `json:"student_name"`
	CompanyID        *int64 `json:"company_id"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

type ChallengeRating struct {
	ID          int64 `json:"id"`
	StudentID   int64 `json:"student_id"`
	ChallengeID int64 `json:"challenge_id"`
	Rating      int   `json:"rating"` // 0..10
}

// SpacedRepetition holds the three review checkpoints for a (student, course)
// pair. At most one live record exists per pair.
type SpacedRepetition struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	CourseID     int64     `json:"course_id"`
	Moment1      time.Time `json:"moment1"`
	IsCompleted1 bool      `json:"is_completed1"`
	Moment2      time.Time `json:"moment2"`
	IsCompleted2 bool      `json:"is_completed2"`
	Moment3      time.Time `json:"moment3"`
	IsCompleted3 bool      `json:"is_completed3"`
	CreatedAt    time.Time `json:"created_at"`
}

type StudentProgress struct {
	ID                 int64 `json:"id"`
	StudentID          int64 `json:"student_id"`
	CourseID           int64 `json:"course_id"`
	CourseProgress     int   `json:"course_progress"` // percentage
	CourseCompleted    bool  `json:"course_completed"`
	LastChallengeLevel int   `json:"last_challenge_level"`
}

// CourseSummary is the per-course view returned by the courses-summary
// endpoint: course metadata plus the requesting student's progress.
type CourseSummary struct {
	Course         Course           `json:"course"`
	ChallengeCount int              `json:"challenge_count"`
	Progress       *StudentProgress `json:"progress"`
}
