package service

import (
	"fmt"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/store"
)

type Services struct {
	AccountService  AccountService
	RecoveryService RecoveryService
	LedgerService   LedgerService
}

// NewServices wires the service layer over the repositories. The notifier
// is injected by the caller so transport concerns stay out of this package.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, notifier GoalNotifier, logger *logger.Logger) (*Services, error) {
	verifier, err := NewCredentialVerifier(cfg.App.CredentialPolicy)
	if err != nil {
		return nil, fmt.Errorf("building credential verifier: %w", err)
	}

	return &Services{
		AccountService:  NewAccountService(repositories.AccountRepository, verifier, cfg.App, logger),
		RecoveryService: NewRecoveryService(repositories.AccountRepository, verifier, cfg.App, logger),
		LedgerService:   NewLedgerService(repositories.MeasurementRepository, repositories.AccountRepository, notifier, logger),
	}, nil
}
