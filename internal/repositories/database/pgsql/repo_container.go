package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		RateConfigRepo:  newPgxSettingsRepository(dbPool),
		WorkspaceRepo:   newPgxWorkspaceRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
	}
}
