package service

import (
	"context"

	"github.com/dchernov/weightkeeper/models"
)

type AccountService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Account, error)
	Authenticate(ctx context.Context, username, password string) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	FindUsernameByEmail(ctx context.Context, email string) (string, bool, error)

	SetGoalWeight(ctx context.Context, accountID int64, value float64) error
	GetGoalWeight(ctx context.Context, accountID int64) (float64, error)
}

type RecoveryService interface {
	Start(ctx context.Context, email string) (models.RecoverySession, string, error)
	VerifyAnswer(ctx context.Context, session models.RecoverySession, answer string) (models.RecoverySession, error)
	CompleteReset(ctx context.Context, session models.RecoverySession, newPassword, newPasswordRepeat string) error

	IssueToken(session models.RecoverySession) (string, error)
	ParseToken(tokenString string) (models.RecoverySession, error)
}

type LedgerService interface {
	Append(ctx context.Context, accountID int64, entryDate string, weight float64) (models.MeasurementEntry, models.GoalStatus, error)
	List(ctx context.Context, accountID int64) ([]models.MeasurementEntry, models.GoalStatus, error)
	Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error)
	Remove(ctx context.Context, accountID, entryID int64) (int64, error)
}

// GoalNotifier is notified when an appended measurement puts the account at
// or under its goal weight. Delivery is best-effort; the ledger does not fail
// an append over a notification error.
type GoalNotifier interface {
	NotifyGoalReached(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error
}
