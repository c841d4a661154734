package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type challengeRepository struct {
	db *sql.DB
}

// NewChallengeRepository creates a new ChallengeRepository implementation
func NewChallengeRepository(db *sql.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	var c models.Challenge
	err := r.db.QueryRowContext(ctx, `
SELECT id, course_id, name, text, level, estimated_minutes, created_at
FROM challenges
WHERE id = ?
`, id).Scan(&c.ID, &c.CourseID, &c.Name, &c.Text, &c.Level, &c.EstimatedMinutes, &c.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.FromContext(ctx).Error().Err(err).Int64("challenge_id", id).Msg("failed to get challenge")
		}
		return nil, err
	}
	return &c, nil
}

// FirstUnattempted picks the next challenge in difficulty order. Ordering is
// level ascending with id ascending as the tie-break, so challenges created
// earlier at the same level are served first.
func (r *challengeRepository) FirstUnattempted(ctx context.Context, courseID int64, excludeIDs []int64) (*models.Challenge, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.
		Select("id", "course_id", "name", "text", "level", "estimated_minutes", "created_at").
		From("challenges").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("level ASC", "id ASC").
		Limit(1)
	if len(excludeIDs) > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeIDs})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build challenge selection query")
		return nil, err
	}

	var c models.Challenge
	err = r.db.QueryRowContext(ctx, sqlStr, args...).
		Scan(&c.ID, &c.CourseID, &c.Name, &c.Text, &c.Level, &c.EstimatedMinutes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int64("course_id", courseID).Msg("failed to select unattempted challenge")
		return nil, err
	}
	return &c, nil
}

func (r *challengeRepository) Insert(ctx context.Context, c models.Challenge) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO challenges (course_id, name, text, level, estimated_minutes)
VALUES (?, ?, ?, ?, ?)
`, c.CourseID, c.Name, c.Text, c.Level, c.EstimatedMinutes)
	if err != nil {
		log.Error().Err(err).Int64("course_id", c.CourseID).Msg("failed to insert challenge")
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug().Int64("challenge_id", id).Int64("course_id", c.CourseID).Msg("challenge inserted")
	return id, nil
}

func (r *challengeRepository) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE challenges SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("challenge_id", id).Msg("failed to update challenge name")
	}
	return err
}

func (r *challengeRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM challenges WHERE course_id = ?`, courseID).Scan(&count)
	return count, err
}
