package mockdata

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTimetable_Generate(t *testing.T) {
	g := NewRandomTimetable(rand.NewPCG(1, 1))

	tt, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, tt.Timetable, len(Weekdays))
	total := 0
	for _, day := range Weekdays {
		entries := tt.Timetable[day]
		assert.Len(t, entries, len(TimeSlots)*ParallelClasses)
		for _, e := range entries {
			assert.Contains(t, TimeSlots, e.Time)
			assert.Contains(t, timetableSubjects, e.Subject)
			assert.Contains(t, teachers, e.Teacher)
			assert.Contains(t, rooms, e.Room)
		}
		total += len(entries)
	}
	assert.Equal(t, 250, total)
	assert.Equal(t, total, tt.Stats.ClassesScheduled)
	assert.Equal(t, 12, tt.Stats.ConflictsResolved)
}

func TestRandomDashboard_Generate(t *testing.T) {
	g := NewRandomDashboard(rand.NewPCG(5, 9))

	for i := 0; i < 50; i++ {
		d, err := g.Generate(context.Background())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, d.Stats.CompletionRate, 60)
		assert.LessOrEqual(t, d.Stats.CompletionRate, 95)
		if d.Stats.CompletionRate < 75 {
			assert.GreaterOrEqual(t, d.Stats.TopicsToReview, 4)
		} else {
			assert.LessOrEqual(t, d.Stats.TopicsToReview, 3)
		}
		assert.Equal(t, d.Profile.LearningPace, d.Stats.LearningPace)
		assert.Contains(t, learningPaces, d.Profile.LearningPace)
		assert.Len(t, d.Schedule, 3)
		assert.Len(t, d.Feedback, 2)
		assert.Len(t, d.Progress, 4)
		assert.Len(t, d.Skills.Strengths, 3)
		assert.Len(t, d.Skills.Gaps, 3)
		assert.NotEqual(t, d.Skills.Strengths[0], d.Skills.Strengths[1])
		assert.NotEmpty(t, d.Recommendation)
	}
}

func TestGenerators_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRandomTimetable(nil).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewRandomDashboard(nil).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
