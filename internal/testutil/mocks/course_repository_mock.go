package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockCourseRepository is a mock implementation of repository.CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Get(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) Materials(ctx context.Context, courseID int64) ([]models.Material, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Material), args.Error(1)
}
