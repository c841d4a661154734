package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new CourseRepository implementation
func NewCourseRepository(db *sql.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Get(ctx context.Context, id int64) (*models.Course, error) {
	var c models.Course
	err := r.db.QueryRowContext(ctx, `
SELECT id, title, description, transcript, created_at
FROM courses
WHERE id = ?
`, id).Scan(&c.ID, &c.Title, &c.Description, &c.Transcript, &c.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.FromContext(ctx).Error().Err(err).Int64("course_id", id).Msg("failed to get course")
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, description, transcript, created_at
FROM courses
ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Transcript, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) Materials(ctx context.Context, courseID int64) ([]models.Material, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, course_id, name, link
FROM materials
WHERE course_id = ?
ORDER BY id
`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Name, &m.Link); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}
