package repositories

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
)

// TransferWriter defines the atomic transfer write.
type TransferWriter interface {
	// SaveTransfer executes a transfer as one database transaction: it locks
	// the sender and receiver rows, decides COMPLETED or FAILED from the
	// locked sender balance, applies balance changes for COMPLETED transfers
	// and inserts the transaction row. The returned transaction carries the
	// decided status and generated id. Any failure rolls the whole unit back.
	SaveTransfer(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// TransferReader defines read operations over the transaction ledger.
type TransferReader interface {
	// ListTransfersByAccountID returns every transaction where the account is
	// sender or receiver, joined with person names and branch label, ordered
	// by transaction date descending then id descending.
	ListTransfersByAccountID(ctx context.Context, accountID int64) ([]domain.TransferEntry, error)
}

// TransferRepositoryFacade combines the transfer repository interfaces
type TransferRepositoryFacade interface {
	TransferWriter
	TransferReader
}
