package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockSpacedRepetitionRepository is a mock implementation of repository.SpacedRepetitionRepository
type MockSpacedRepetitionRepository struct {
	mock.Mock
}

func (m *MockSpacedRepetitionRepository) GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.SpacedRepetition, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpacedRepetition), args.Error(1)
}

func (m *MockSpacedRepetitionRepository) CreateIfAbsent(ctx context.Context, sr models.SpacedRepetition) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}

func (m *MockSpacedRepetitionRepository) SetCompleted(ctx context.Context, id int64, moment int) error {
	args := m.Called(ctx, id, moment)
	return args.Error(0)
}
