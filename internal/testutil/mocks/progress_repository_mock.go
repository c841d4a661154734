package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetOrCreate(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProgress), args.Error(1)
}

func (m *MockProgressRepository) GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.StudentProgress, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProgress), args.Error(1)
}
