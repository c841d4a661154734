package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockChallengeRepository is a mock implementation of repository.ChallengeRepository
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) FirstUnattempted(ctx context.Context, courseID int64, excludeIDs []int64) (*models.Challenge, error) {
	args := m.Called(ctx, courseID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Insert(ctx context.Context, c models.Challenge) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChallengeRepository) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockChallengeRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}
