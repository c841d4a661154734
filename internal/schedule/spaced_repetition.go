// Package schedule holds the spaced-repetition scheduling rules.
package schedule

import (
	"fmt"
	"time"

	"github.com/sirius-edu/sirius/internal/models"
)

// Review moment offsets: short, medium, and long-term checkpoints.
const (
	Moment1Offset = 24 * time.Hour
	Moment2Offset = 7 * 24 * time.Hour
	Moment3Offset = 30 * 24 * time.Hour
)

// New builds the review schedule for a fresh enrollment: three future
// checkpoints, all incomplete.
func New(studentID, courseID int64, now time.Time) models.SpacedRepetition {
	return models.SpacedRepetition{
		StudentID: studentID,
		CourseID:  courseID,
		Moment1:   now.Add(Moment1Offset),
		Moment2:   now.Add(Moment2Offset),
		Moment3:   now.Add(Moment3Offset),
	}
}

// MarkComplete sets the completion flag for one moment. Moments are three
// independent booleans, not a linear state machine; completing them out of
// order is allowed. An out-of-range moment is a programming error.
func MarkComplete(sr models.SpacedRepetition, moment int) (models.SpacedRepetition, error) {
	switch moment {
	case 1:
		sr.IsCompleted1 = true
	case 2:
		sr.IsCompleted2 = true
	case 3:
		sr.IsCompleted3 = true
	default:
		return sr, fmt.Errorf("invalid moment %d: must be 1, 2, or 3", moment)
	}
	return sr, nil
}
