package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sirius-edu/sirius/internal/models"
)

// MockStudentRepository is a mock implementation of repository.StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Get(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	args := m.Called(ctx, studentID, courseID)
	return args.Error(0)
}

func (m *MockStudentRepository) EnrolledCourseIDs(ctx context.Context, studentID int64) ([]int64, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockStudentRepository) AttemptedChallengeIDs(ctx context.Context, studentID int64) ([]int64, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockStudentRepository) AddAttemptedChallenge(ctx context.Context, studentID, challengeID int64) error {
	args := m.Called(ctx, studentID, challengeID)
	return args.Error(0)
}
