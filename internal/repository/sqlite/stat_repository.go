package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type statRepository struct {
	db *sql.DB
}

// NewStatRepository creates a new StatRepository implementation
func NewStatRepository(db *sql.DB) repository.StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) Insert(ctx context.Context, stat models.ChallengeStat) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO challenge_stats (student_id, challenge_id, score, skipped, timeout, moment)
VALUES (?, ?, ?, ?, ?, ?)
`, stat.StudentID, stat.ChallengeID, stat.Score, stat.Skipped, stat.Timeout, stat.Moment)
	if err != nil {
		log.Error().Err(err).
			Int64("student_id", stat.StudentID).
			Int64("challenge_id", stat.ChallengeID).
			Msg("failed to insert challenge stat")
		return 0, err
	}
	return res.LastInsertId()
}

func (r *statRepository) InsertRating(ctx context.Context, rating models.ChallengeRating) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO challenge_ratings (student_id, challenge_id, rating)
VALUES (?, ?, ?)
`, rating.StudentID, rating.ChallengeID, rating.Rating)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Int64("student_id", rating.StudentID).
			Int64("challenge_id", rating.ChallengeID).
			Msg("failed to insert challenge rating")
		return 0, err
	}
	return res.LastInsertId()
}

func (r *statRepository) List(ctx context.Context, companyID *int64) ([]models.ChallengeStatDetail, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.
		Select(
			"cs.id", "cs.student_id", "cs.challenge_id", "cs.score", "cs.skipped", "cs.timeout", "cs.moment", "cs.created_at",
			"s.name", "s.company_id", "c.estimated_minutes",
		).
		From("challenge_stats cs").
		Join("students s ON s.id = cs.student_id").
		Join("challenges c ON c.id = cs.challenge_id").
		OrderBy("cs.id")
	if companyID != nil {
		query = query.Where(squirrel.Eq{"s.company_id": *companyID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("failed to build stat query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query challenge stats")
		return nil, err
	}
	defer rows.Close()

	var stats []models.ChallengeStatDetail
	for rows.Next() {
		var d models.ChallengeStatDetail
		var score sql.NullFloat64
		var moment sql.NullInt64
		if err := rows.Scan(
			&d.ID, &d.StudentID, &d.ChallengeID, &score, &d.Skipped, &d.Timeout, &moment, &d.CreatedAt,
			&d.StudentName, &d.CompanyID, &d.EstimatedMinutes,
		); err != nil {
			return nil, err
		}
		if score.Valid {
			v := score.Float64
			d.Score = &v
		}
		if moment.Valid {
			m := int(moment.Int64)
			d.Moment = &m
		}
		stats = append(stats, d)
	}
	return stats, rows.Err()
}
