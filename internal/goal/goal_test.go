package goal

import (
	"testing"

	"github.com/dchernov/weightkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(weight float64) *models.MeasurementEntry {
	return &models.MeasurementEntry{EntryID: 1, AccountID: 1, EntryDate: "2024-01-05", Weight: weight}
}

func TestStatus_NoGoalNoEntries(t *testing.T) {
	status := Status(0, nil)

	assert.False(t, status.GoalSet)
	assert.False(t, status.Reached)
	assert.Nil(t, status.Current)
	assert.Nil(t, status.DeltaToGoal)
}

func TestStatus_GoalSetNoEntries(t *testing.T) {
	status := Status(170, nil)

	assert.True(t, status.GoalSet)
	assert.False(t, status.Reached)
	assert.Nil(t, status.Current)
	assert.Nil(t, status.DeltaToGoal)
}

func TestStatus_NoGoalWithEntry(t *testing.T) {
	status := Status(0, entry(174))

	assert.False(t, status.GoalSet)
	assert.False(t, status.Reached)
	require.NotNil(t, status.Current)
	assert.Equal(t, 174.0, *status.Current)
	assert.Nil(t, status.DeltaToGoal)
}

func TestStatus_AboveGoal(t *testing.T) {
	status := Status(170, entry(174))

	assert.True(t, status.GoalSet)
	assert.False(t, status.Reached)
	require.NotNil(t, status.Current)
	require.NotNil(t, status.DeltaToGoal)
	assert.Equal(t, 174.0, *status.Current)
	assert.Equal(t, 4.0, *status.DeltaToGoal)
}

func TestStatus_UnderGoal(t *testing.T) {
	status := Status(170, entry(169))

	assert.True(t, status.Reached)
	require.NotNil(t, status.DeltaToGoal)
	assert.Equal(t, -1.0, *status.DeltaToGoal)
}

func TestStatus_ExactlyAtGoal(t *testing.T) {
	status := Status(170, entry(170))

	assert.True(t, status.Reached)
	require.NotNil(t, status.DeltaToGoal)
	assert.Equal(t, 0.0, *status.DeltaToGoal)
}
