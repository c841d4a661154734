package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockStatRepository is a mock implementation of repository.StatRepository
type MockStatRepository struct {
	mock.Mock
}

func (m *MockStatRepository) Insert(ctx context.Context, stat models.ChallengeStat) (int64, error) {
	args := m.Called(ctx, stat)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatRepository) InsertRating(ctx context.Context, rating models.ChallengeRating) (int64, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatRepository) List(ctx context.Context, companyID *int64) ([]models.ChallengeStatDetail, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeStatDetail), args.Error(1)
}
