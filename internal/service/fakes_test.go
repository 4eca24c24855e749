package service

import (
	"context"

	"github.com/dchernov/weightkeeper/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	createFn              func(ctx context.Context, account models.Account) (models.Account, error)
	findByUsernameFn      func(ctx context.Context, username string) (models.Account, error)
	usernameExistsFn      func(ctx context.Context, username string) (bool, error)
	emailExistsFn         func(ctx context.Context, email string) (bool, error)
	findUsernameByEmailFn func(ctx context.Context, email string) (string, bool, error)
	getQuestionFn         func(ctx context.Context, username string) (string, bool, error)
	getAnswerFn           func(ctx context.Context, username string) (string, bool, error)
	updatePasswordFn      func(ctx context.Context, username, newPassword string) (bool, error)
	setGoalWeightFn       func(ctx context.Context, accountID int64, value float64) error
	getGoalWeightFn       func(ctx context.Context, accountID int64) (float64, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return account, nil
}
func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.Account{}, nil
}
func (m *mockAccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.usernameExistsFn != nil {
		return m.usernameExistsFn(ctx, username)
	}
	return false, nil
}
func (m *mockAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}
func (m *mockAccountRepository) FindUsernameByEmail(ctx context.Context, email string) (string, bool, error) {
	if m.findUsernameByEmailFn != nil {
		return m.findUsernameByEmailFn(ctx, email)
	}
	return "", false, nil
}
func (m *mockAccountRepository) GetSecurityQuestion(ctx context.Context, username string) (string, bool, error) {
	if m.getQuestionFn != nil {
		return m.getQuestionFn(ctx, username)
	}
	return "", false, nil
}
func (m *mockAccountRepository) GetSecurityAnswer(ctx context.Context, username string) (string, bool, error) {
	if m.getAnswerFn != nil {
		return m.getAnswerFn(ctx, username)
	}
	return "", false, nil
}
func (m *mockAccountRepository) UpdatePassword(ctx context.Context, username, newPassword string) (bool, error) {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, username, newPassword)
	}
	return false, nil
}
func (m *mockAccountRepository) SetGoalWeight(ctx context.Context, accountID int64, value float64) error {
	if m.setGoalWeightFn != nil {
		return m.setGoalWeightFn(ctx, accountID, value)
	}
	return nil
}
func (m *mockAccountRepository) GetGoalWeight(ctx context.Context, accountID int64) (float64, error) {
	if m.getGoalWeightFn != nil {
		return m.getGoalWeightFn(ctx, accountID)
	}
	return 0, nil
}

type mockMeasurementRepository struct {
	appendFn func(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error)
	listFn   func(ctx context.Context, accountID int64) ([]models.MeasurementEntry, error)
	latestFn func(ctx context.Context, accountID int64) (*models.MeasurementEntry, error)
	updateFn func(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error)
	removeFn func(ctx context.Context, accountID, entryID int64) (int64, error)
}

func (m *mockMeasurementRepository) Append(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, entry)
	}
	entry.EntryID = 1
	return entry, nil
}
func (m *mockMeasurementRepository) ListForAccount(ctx context.Context, accountID int64) ([]models.MeasurementEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, accountID)
	}
	return nil, nil
}
func (m *mockMeasurementRepository) Latest(ctx context.Context, accountID int64) (*models.MeasurementEntry, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, accountID)
	}
	return nil, nil
}
func (m *mockMeasurementRepository) Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, accountID, entryID, entryDate, weight)
	}
	return false, nil
}
func (m *mockMeasurementRepository) Remove(ctx context.Context, accountID, entryID int64) (int64, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, accountID, entryID)
	}
	return 0, nil
}

type mockNotifier struct {
	calls    int
	notifyFn func(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error
}

func (m *mockNotifier) NotifyGoalReached(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error {
	m.calls++
	if m.notifyFn != nil {
		return m.notifyFn(ctx, accountID, currentWeight, goalWeight)
	}
	return nil
}
