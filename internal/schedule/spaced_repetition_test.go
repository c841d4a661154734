package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirius-edu/sirius/internal/schedule"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	sr := schedule.New(7, 3, now)

	assert.Equal(t, int64(7), sr.StudentID)
	assert.Equal(t, int64(3), sr.CourseID)
	assert.Equal(t, now.Add(24*time.Hour), sr.Moment1)
	assert.Equal(t, now.Add(7*24*time.Hour), sr.Moment2)
	assert.Equal(t, now.Add(30*24*time.Hour), sr.Moment3)
	assert.False(t, sr.IsCompleted1)
	assert.False(t, sr.IsCompleted2)
	assert.False(t, sr.IsCompleted3)
}

func TestMarkComplete(t *testing.T) {
	sr := schedule.New(1, 1, time.Now())

	sr, err := schedule.MarkComplete(sr, 2)
	require.NoError(t, err)
	assert.False(t, sr.IsCompleted1)
	assert.True(t, sr.IsCompleted2)
	assert.False(t, sr.IsCompleted3)

	// Moments complete independently, order does not matter.
	sr, err = schedule.MarkComplete(sr, 1)
	require.NoError(t, err)
	assert.True(t, sr.IsCompleted1)

	sr, err = schedule.MarkComplete(sr, 3)
	require.NoError(t, err)
	assert.True(t, sr.IsCompleted3)
}

func TestMarkComplete_InvalidMoment(t *testing.T) {
	sr := schedule.New(1, 1, time.Now())

	for _, moment := range []int{0, 4, -1} {
		_, err := schedule.MarkComplete(sr, moment)
		assert.Error(t, err, "moment %d", moment)
	}
}
