package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

type promptTemplateRepository struct {
	db *sql.DB
}

// NewPromptTemplateRepository creates a new PromptTemplateRepository implementation
func NewPromptTemplateRepository(db *sql.DB) repository.PromptTemplateRepository {
	return &promptTemplateRepository{db: db}
}

func (r *promptTemplateRepository) GetByKind(ctx context.Context, kind models.PromptKind) (*models.PromptTemplate, error) {
	var t models.PromptTemplate
	err := r.db.QueryRowContext(ctx, `
SELECT id, kind, text, created_at, updated_at
FROM prompt_templates
WHERE kind = ?
`, string(kind)).Scan(&t.ID, &t.Kind, &t.Text, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.FromContext(ctx).Error().Err(err).Str("kind", string(kind)).Msg("failed to get prompt template")
		}
		return nil, err
	}
	return &t, nil
}

func (r *promptTemplateRepository) List(ctx context.Context) ([]models.PromptTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, kind, text, created_at, updated_at
FROM prompt_templates
ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.PromptTemplate
	for rows.Next() {
		var t models.PromptTemplate
		if err := rows.Scan(&t.ID, &t.Kind, &t.Text, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
