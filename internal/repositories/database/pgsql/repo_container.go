package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	personRepo := NewPersonRepository(dbPool)
	branchRepo := NewBranchRepository(dbPool)
	accountRepo := NewAccountRepository(dbPool)
	transferRepo := NewTransferRepository(dbPool, accountRepo)

	return portsrepo.RepositoryProvider{
		PersonRepo:   personRepo,
		BranchRepo:   branchRepo,
		AccountRepo:  accountRepo,
		TransferRepo: transferRepo,
	}
}
