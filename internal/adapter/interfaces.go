package adapter

import "context"

// GoalNotifier pushes goal-reached events to an external collaborator.
// It is satisfied by the webhook implementation and by the no-op fallback,
// and matches the notifier contract the service layer consumes.
type GoalNotifier interface {
	NotifyGoalReached(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error
}
