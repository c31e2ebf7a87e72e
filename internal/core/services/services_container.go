package services

import (
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/pkg/config"
)

// NewServiceContainer wires all services against the repository provider.
// The workspace service is built first because every workspace-scoped
// service authorizes through it.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	workspaceSvc := NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo)
	authorizer := workspaceSvc.(portssvc.WorkspaceAuthorizerSvc)

	tokenSvc := NewTokenService(cfg, repos.UserRepo)

	return &portssvc.ServiceContainer{
		WorkspaceSvc:   workspaceSvc,
		TransactionSvc: NewTransactionService(repos.TransactionRepo, authorizer),
		SettlementSvc:  NewSettlementService(repos.TransactionRepo, repos.RateConfigRepo, authorizer),
		RateConfigSvc:  NewRateConfigService(repos.RateConfigRepo, authorizer),
		UserSvc:        NewUserService(repos.UserRepo),
		TokenSvc:       tokenSvc,
		GoogleOAuthSvc: NewGoogleOAuthService(cfg, repos.UserRepo, tokenSvc),
		ClientSvc:      NewClientService(repos.ClientRepo, authorizer),
	}
}
