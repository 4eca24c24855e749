package models

// GoalStatus is the derived view comparing the latest measurement to the
// account's goal weight.
//
// Current and DeltaToGoal are nil when no measurement exists; DeltaToGoal is
// additionally nil when no goal is set. A positive delta means the current
// weight is above the goal, zero or negative means the goal is met.
type GoalStatus struct {
	// GoalSet is true iff the account has a goal weight greater than zero.
	GoalSet bool `json:"goal_set"`

	// Current is the weight of the most recent measurement, if any.
	Current *float64 `json:"current,omitempty"`

	// DeltaToGoal is Current minus the goal weight, when both are known.
	DeltaToGoal *float64 `json:"delta_to_goal,omitempty"`

	// Reached is true when a goal is set and the current weight is at or
	// under it.
	Reached bool `json:"reached"`
}
