package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type spacedRepetitionRepository struct {
	db *sql.DB
}

// NewSpacedRepetitionRepository creates a new SpacedRepetitionRepository implementation
func NewSpacedRepetitionRepository(db *sql.DB) repository.SpacedRepetitionRepository {
	return &spacedRepetitionRepository{db: db}
}

func (r *spacedRepetitionRepository) GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.SpacedRepetition, error) {
	var sr models.SpacedRepetition
	err := r.db.QueryRowContext(ctx, `
SELECT id, student_id, course_id, moment1, is_completed1, moment2, is_completed2, moment3, is_completed3, created_at
FROM spaced_repetitions
WHERE student_id = ? AND course_id = ?
`, studentID, courseID).Scan(
		&sr.ID, &sr.StudentID, &sr.CourseID,
		&sr.Moment1, &sr.IsCompleted1,
		&sr.Moment2, &sr.IsCompleted2,
		&sr.Moment3, &sr.IsCompleted3,
		&sr.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", studentID).
			Int64("course_id", courseID).
			Msg("failed to get spaced repetition")
		return nil, err
	}
	return &sr, nil
}

func (r *spacedRepetitionRepository) CreateIfAbsent(ctx context.Context, sr models.SpacedRepetition) error {
	// The UNIQUE (student_id, course_id) constraint plus OR IGNORE keeps
	// re-enrollment from spawning a second schedule.
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO spaced_repetitions (student_id, course_id, moment1, moment2, moment3)
VALUES (?, ?, ?, ?, ?)
`, sr.StudentID, sr.CourseID, sr.Moment1, sr.Moment2, sr.Moment3)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", sr.StudentID).
			Int64("course_id", sr.CourseID).
			Msg("failed to create spaced repetition")
	}
	return err
}

func (r *spacedRepetitionRepository) SetCompleted(ctx context.Context, id int64, moment int) error {
	var column string
	switch moment {
	case 1:
		column = "is_completed1"
	case 2:
		column = "is_completed2"
	case 3:
		column = "is_completed3"
	default:
		return fmt.Errorf("invalid moment %d: must be 1, 2, or 3", moment)
	}

	_, err := r.db.ExecContext(ctx, `UPDATE spaced_repetitions SET `+column+` = 1 WHERE id = ?`, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("spaced_repetition_id", id).
			Int("moment", moment).
			Msg("failed to mark moment complete")
	}
	return err
}
