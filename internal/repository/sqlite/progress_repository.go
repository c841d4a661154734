package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetOrCreate(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error) {
	p, err := r.GetByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	// OR IGNORE covers the race where two requests create the record at
	// once; the re-read below returns whichever row won.
	_, err = r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO student_progress (student_id, course_id) VALUES (?, ?)
`, studentID, courseID)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", studentID).
			Int64("course_id", courseID).
			Msg("failed to create student progress")
		return nil, err
	}
	return r.GetByStudentCourse(ctx, studentID, courseID)
}

func (r *progressRepository) GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error) {
	var p models.StudentProgress
	err := r.db.QueryRowContext(ctx, `
SELECT id, student_id, course_id, course_progress, course_completed, last_challenge_level
FROM student_progress
WHERE student_id = ? AND course_id = ?
`, studentID, courseID).Scan(&p.ID, &p.StudentID, &p.CourseID, &p.CourseProgress, &p.CourseCompleted, &p.LastChallengeLevel)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
