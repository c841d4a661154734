package services

import (
	"context"
	"database/sql"

	"github.com/sirius-edu/sirius/internal/errors"
	"github.com/sirius-edu/sirius/internal/metrics"
	"github.com/sirius-edu/sirius/internal/repository"
)

// CompanyMetrics pairs the platform-wide aggregation with the aggregation
// restricted to the requesting student's company. Company is nil when the
// student has no company.
type CompanyMetrics struct {
	Global  metrics.Summary  `json:"global"`
	Company *metrics.Summary `json:"company"`
}

// MetricsService computes aggregated challenge statistics.
type MetricsService interface {
	CompanyMetrics(ctx context.Context, studentID int64) (*CompanyMetrics, error)
}

type metricsService struct {
	students repository.StudentRepository
	stats    repository.StatRepository
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(students repository.StudentRepository, stats repository.StatRepository) MetricsService {
	return &metricsService{students: students, stats: stats}
}

func (s *metricsService) CompanyMetrics(ctx context.Context, studentID int64) (*CompanyMetrics, error) {
	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", studentID)
		}
		return nil, errors.NewInternalError(err)
	}

	all, err := s.stats.List(ctx, nil)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	result := &CompanyMetrics{Global: metrics.Summarize(all)}

	if student.CompanyID != nil {
		companyStats, err := s.stats.List(ctx, student.CompanyID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		summary := metrics.Summarize(companyStats)
		result.Company = &summary
	}
	return result, nil
}
