package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by surrogate id.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with the generated id.
	// A duplicate account number yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountTransactionSupport defines operations used inside transfer
// transactions.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts in ascending id order and
	// locks the rows for update within the given transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// UpdateAccountBalanceInTx overwrites one account's balance within the
	// given transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
