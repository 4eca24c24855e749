// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/service"
	"github.com/dchernov/weightkeeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAccountService implements service.AccountService for unit tests.
// Each method field can be overridden per test case.
type mockAccountService struct {
	registerFn            func(ctx context.Context, request models.RegisterRequest) (models.Account, error)
	authenticateFn        func(ctx context.Context, username, password string) (models.Account, error)
	createTokenFn         func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn          func(ctx context.Context, tokenString string) (models.Token, error)
	usernameTakenFn       func(ctx context.Context, username string) (bool, error)
	emailTakenFn          func(ctx context.Context, email string) (bool, error)
	findUsernameByEmailFn func(ctx context.Context, email string) (string, bool, error)
	setGoalWeightFn       func(ctx context.Context, accountID int64, value float64) error
	getGoalWeightFn       func(ctx context.Context, accountID int64) (float64, error)
}

func (m *mockAccountService) Register(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
	return m.registerFn(ctx, request)
}
func (m *mockAccountService) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	return m.authenticateFn(ctx, username, password)
}
func (m *mockAccountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, account)
	}
	return models.Token{SignedString: "stub-token"}, nil
}
func (m *mockAccountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}
func (m *mockAccountService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return m.usernameTakenFn(ctx, username)
}
func (m *mockAccountService) EmailTaken(ctx context.Context, email string) (bool, error) {
	return m.emailTakenFn(ctx, email)
}
func (m *mockAccountService) FindUsernameByEmail(ctx context.Context, email string) (string, bool, error) {
	return m.findUsernameByEmailFn(ctx, email)
}
func (m *mockAccountService) SetGoalWeight(ctx context.Context, accountID int64, value float64) error {
	return m.setGoalWeightFn(ctx, accountID, value)
}
func (m *mockAccountService) GetGoalWeight(ctx context.Context, accountID int64) (float64, error) {
	return m.getGoalWeightFn(ctx, accountID)
}

// mockRecoveryService implements service.RecoveryService for unit tests.
type mockRecoveryService struct {
	startFn         func(ctx context.Context, email string) (models.RecoverySession, string, error)
	verifyAnswerFn  func(ctx context.Context, session models.RecoverySession, answer string) (models.RecoverySession, error)
	completeResetFn func(ctx context.Context, session models.RecoverySession, newPassword, newPasswordRepeat string) error
	issueTokenFn    func(session models.RecoverySession) (string, error)
	parseTokenFn    func(tokenString string) (models.RecoverySession, error)
}

func (m *mockRecoveryService) Start(ctx context.Context, email string) (models.RecoverySession, string, error) {
	return m.startFn(ctx, email)
}
func (m *mockRecoveryService) VerifyAnswer(ctx context.Context, session models.RecoverySession, answer string) (models.RecoverySession, error) {
	return m.verifyAnswerFn(ctx, session, answer)
}
func (m *mockRecoveryService) CompleteReset(ctx context.Context, session models.RecoverySession, newPassword, newPasswordRepeat string) error {
	return m.completeResetFn(ctx, session, newPassword, newPasswordRepeat)
}
func (m *mockRecoveryService) IssueToken(session models.RecoverySession) (string, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(session)
	}
	return "stub-recovery-token", nil
}
func (m *mockRecoveryService) ParseToken(tokenString string) (models.RecoverySession, error) {
	return m.parseTokenFn(tokenString)
}

// mockLedgerService implements service.LedgerService for unit tests.
type mockLedgerService struct {
	appendFn func(ctx context.Context, accountID int64, entryDate string, weight float64) (models.MeasurementEntry, models.GoalStatus, error)
	listFn   func(ctx context.Context, accountID int64) ([]models.MeasurementEntry, models.GoalStatus, error)
	updateFn func(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error)
	removeFn func(ctx context.Context, accountID, entryID int64) (int64, error)
}

func (m *mockLedgerService) Append(ctx context.Context, accountID int64, entryDate string, weight float64) (models.MeasurementEntry, models.GoalStatus, error) {
	return m.appendFn(ctx, accountID, entryDate, weight)
}
func (m *mockLedgerService) List(ctx context.Context, accountID int64) ([]models.MeasurementEntry, models.GoalStatus, error) {
	return m.listFn(ctx, accountID)
}
func (m *mockLedgerService) Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error) {
	return m.updateFn(ctx, accountID, entryID, entryDate, weight)
}
func (m *mockLedgerService) Remove(ctx context.Context, accountID, entryID int64) (int64, error) {
	return m.removeFn(ctx, accountID, entryID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks
// stay nil and panic on use, keeping tests honest about what they exercise.
func newTestHandler(t *testing.T, accounts service.AccountService, recovery service.RecoveryService, ledger service.LedgerService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AccountService:  accounts,
		RecoveryService: recovery,
		LedgerService:   ledger,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
