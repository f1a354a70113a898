//go:build integration_test || all_tests

package workouts

import (
	"testing"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/catalog"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"
	testingpkg "github.com/JustRob12/HomeWorkoutGenerator/pkg/testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkout(username string, createdAt time.Time) *Workout {
	return &Workout{
		ID:       uuid.NewString(),
		Username: username,
		Workout: generator.Workout{
			Name:     "Custom Beginner Workout",
			Duration: "6 minutes",
			Exercises: []catalog.Exercise{
				{Name: "Plank", Prescription: catalog.Timed{Sets: 3, Duration: catalog.Duration{Amount: 30, Unit: "seconds"}}},
				{Name: "Crunches", Prescription: catalog.Reps{Count: 15, Sets: 3}},
			},
		},
		Status:    StatusInactive,
		CreatedAt: createdAt,
	}
}

func TestRepo_BasicCRUD(t *testing.T) {
	ctx, dbPool := testingpkg.GetMigratedDBPool(t)
	repo := NewRepo(dbPool)

	list, err := repo.ListByUsername(ctx, "jane")
	require.NoError(t, err)
	require.Empty(t, list)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	w1 := testWorkout("jane", base)
	w2 := testWorkout("jane", base.Add(time.Hour))
	other := testWorkout("john", base)
	for _, w := range []*Workout{w1, w2, other} {
		_, err := repo.Add(ctx, w)
		require.NoError(t, err)
	}

	got, err := repo.Get(ctx, w1.ID)
	require.NoError(t, err)
	assert.Equal(t, w1.ID, got.ID)
	assert.True(t, w1.CreatedAt.Equal(got.CreatedAt))
	if diff := cmp.Diff(w1.Workout, got.Workout); diff != "" {
		t.Errorf("stored workout mismatch (-want +got):\n%s", diff)
	}

	list, err = repo.ListByUsername(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, w2.ID, list[0].ID)
	assert.Equal(t, w1.ID, list[1].ID)

	// full lifecycle, persisted step by step
	require.NoError(t, got.Transition(StatusActive, 72, base.Add(2*time.Hour)))
	require.NoError(t, repo.Update(ctx, got))
	require.NoError(t, got.Transition(StatusCompleted, 96, base.Add(3*time.Hour)))
	require.NoError(t, repo.Update(ctx, got))

	completed, err := repo.ListCompleted(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, StatusCompleted, completed[0].Status)
	require.NotNil(t, completed[0].PulseRates.PercentageChange)
	assert.Equal(t, 33.3, *completed[0].PulseRates.PercentageChange)
	assert.Equal(t, 24, *completed[0].PulseRates.Difference)
	require.NotNil(t, completed[0].CompletedAt)
	assert.True(t, base.Add(3*time.Hour).Equal(*completed[0].CompletedAt))

	require.NoError(t, repo.Delete(ctx, w1.ID))
	_, err = repo.Get(ctx, w1.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, w1.ID), ErrWorkoutNotFound)
	assert.ErrorIs(t, repo.Update(ctx, w1), ErrWorkoutNotFound)

	// malformed ids are simply not found
	_, err = repo.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "not-a-uuid"), ErrWorkoutNotFound)
}
