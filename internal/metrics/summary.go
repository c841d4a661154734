// Package metrics aggregates challenge statistics. All functions are pure;
// persistence and filtering happen in the caller.
package metrics

import (
	"sort"

	"github.com/sirius-edu/sirius/internal/models"
)

// TopStudentLimit caps the leaderboard size.
const TopStudentLimit = 6

// StudentCompletion is one leaderboard row.
type StudentCompletion struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
}

// Summary is the aggregated view over a set of challenge stats.
type Summary struct {
	TopStudents           []StudentCompletion `json:"top_students"`
	AverageScoreByMoment  map[int]float64     `json:"average_score_by_moment"`
	TotalEstimatedMinutes int                 `json:"total_estimated_minutes"`
	TotalCompleted        int                 `json:"total_completed"`
}

// Summarize aggregates the given stats. A stat counts as completed when its
// score is strictly greater than zero (zero-score attempts are excluded,
// matching the product's historical threshold). Estimated time sums the
// challenge estimates of every non-skipped attempt.
func Summarize(stats []models.ChallengeStatDetail) Summary {
	completedByStudent := map[int64]*StudentCompletion{}
	scoreSum := map[int]float64{}
	scoreCount := map[int]int{}

	summary := Summary{
		AverageScoreByMoment: map[int]float64{1: 0, 2: 0, 3: 0},
	}

	for _, s := range stats {
		if !s.Skipped {
			summary.TotalEstimatedMinutes += s.EstimatedMinutes
		}

		if s.Score != nil && s.Moment != nil {
			scoreSum[*s.Moment] += *s.Score
			scoreCount[*s.Moment]++
		}

		if s.Score != nil && *s.Score > 0 {
			summary.TotalCompleted++
			sc, ok := completedByStudent[s.StudentID]
			if !ok {
				sc = &StudentCompletion{StudentID: s.StudentID, Name: s.StudentName}
				completedByStudent[s.StudentID] = sc
			}
			sc.Completed++
		}
	}

	for moment := 1; moment <= 3; moment++ {
		if scoreCount[moment] > 0 {
			summary.AverageScoreByMoment[moment] = scoreSum[moment] / float64(scoreCount[moment])
		}
	}

	top := make([]StudentCompletion, 0, len(completedByStudent))
	for _, sc := range completedByStudent {
		top = append(top, *sc)
	}
	// Completion count descending; student id ascending keeps ties stable.
	sort.Slice(top, func(i, j int) bool {
		if top[i].Completed != top[j].Completed {
			return top[i].Completed > top[j].Completed
		}
		return top[i].StudentID < top[j].StudentID
	})
	if len(top) > TopStudentLimit {
		top = top[:TopStudentLimit]
	}
	summary.TopStudents = top

	return summary
}
