package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockPromptTemplateRepository is a mock implementation of repository.PromptTemplateRepository
type MockPromptTemplateRepository struct {
	mock.Mock
}

func (m *MockPromptTemplateRepository) GetByKind(ctx context.Context, kind models.PromptKind) (*models.PromptTemplate, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromptTemplate), args.Error(1)
}

func (m *MockPromptTemplateRepository) List(ctx context.Context) ([]models.PromptTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PromptTemplate), args.Error(1)
}
