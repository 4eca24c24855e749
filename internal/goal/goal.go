// Package goal computes goal-progress status from already-fetched state.
// It performs no storage access and keeps no state of its own.
package goal

import "github.com/dchernov/weightkeeper/models"

// Status derives a [models.GoalStatus] from the account's goal weight and the
// most recent ledger entry, if any.
//
// Rules:
//   - GoalSet is true iff goalWeight > 0.
//   - With no latest entry, Current and DeltaToGoal stay nil and Reached is
//     false regardless of the goal.
//   - Otherwise Current is the latest weight; when a goal is set,
//     DeltaToGoal = Current - goalWeight and Reached is true iff
//     Current <= goalWeight.
//
// Detecting a "just reached" transition is the caller's job: evaluate Status
// immediately after an append and act on Reached.
func Status(goalWeight float64, latest *models.MeasurementEntry) models.GoalStatus {
	status := models.GoalStatus{
		GoalSet: goalWeight > 0,
	}

	if latest == nil {
		return status
	}

	current := latest.Weight
	status.Current = &current

	if status.GoalSet {
		delta := current - goalWeight
		status.DeltaToGoal = &delta
		status.Reached = current <= goalWeight
	}

	return status
}
