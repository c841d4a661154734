package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new StudentRepository implementation
func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Get(ctx context.Context, id int64) (*models.Student, error) {
	var s models.Student
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, company_id, created_at
FROM students
WHERE id = ?
`, id).Scan(&s.ID, &s.Name, &s.CompanyID, &s.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.FromContext(ctx).Error().Err(err).Int64("student_id", id).Msg("failed to get student")
		}
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	// INSERT OR IGNORE keeps enrollment idempotent; the m2m primary key
	// already forbids duplicates.
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO student_courses (student_id, course_id) VALUES (?, ?)
`, studentID, courseID)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", studentID).
			Int64("course_id", courseID).
			Msg("failed to enroll student")
	}
	return err
}

func (r *studentRepository) EnrolledCourseIDs(ctx context.Context, studentID int64) ([]int64, error) {
	return r.queryIDs(ctx, `
SELECT course_id FROM student_courses WHERE student_id = ? ORDER BY course_id
`, studentID)
}

func (r *studentRepository) AttemptedChallengeIDs(ctx context.Context, studentID int64) ([]int64, error) {
	return r.queryIDs(ctx, `
SELECT challenge_id FROM student_challenges WHERE student_id = ? ORDER BY challenge_id
`, studentID)
}

func (r *studentRepository) AddAttemptedChallenge(ctx context.Context, studentID, challengeID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO student_challenges (student_id, challenge_id) VALUES (?, ?)
`, studentID, challengeID)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", studentID).
			Int64("challenge_id", challengeID).
			Msg("failed to record attempted challenge")
	}
	return err
}

func (r *studentRepository) queryIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
