package services

import (
	"context"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/models"
	"github.com/sirius-edu/sirius/internal/repository"
)

// TemplateService exposes the stored prompt templates.
type TemplateService interface {
	List(ctx context.Context) ([]models.PromptTemplate, error)
}

type templateService struct {
	templates repository.PromptTemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templates repository.PromptTemplateRepository) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) List(ctx context.Context) ([]models.PromptTemplate, error) {
	list, err := s.templates.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return list, nil
}
