package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	"github.com/quickquid/quickquid_backend/internal/utils/mapping"
)

type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTransferRepository creates a new repository for the transaction ledger.
func NewTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

// SaveTransfer executes a transfer within one database transaction: lock both
// account rows, decide the status from the locked sender balance, apply
// balance changes for COMPLETED transfers and insert the ledger row. Either
// everything becomes visible together or nothing does; a reader reconstructing
// balances from the transaction log never observes a half-applied transfer.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored when the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	accountIDs := []int64{txn.SenderAccountID, txn.ReceiverAccountID}
	if txn.SenderAccountID == txn.ReceiverAccountID {
		accountIDs = accountIDs[:1]
	} else if txn.SenderAccountID > txn.ReceiverAccountID {
		accountIDs[0], accountIDs[1] = accountIDs[1], accountIDs[0]
	}

	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, err
	}
	sender := locked[txn.SenderAccountID]
	receiver := locked[txn.ReceiverAccountID]

	// The sufficiency decision uses the locked balance, not whatever the
	// caller read earlier, so concurrent transfers from the same sender
	// serialize here.
	txn.Status = domain.DecideTransferStatus(sender.Balance, txn.Amount)
	if txn.Status == domain.Completed {
		domain.ApplyTransfer(&sender, &receiver, txn.Amount)
		if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, sender); err != nil {
			return nil, err
		}
		if receiver.AccountID != sender.AccountID {
			if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, receiver); err != nil {
				return nil, err
			}
		}
	}

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (amount, description, status, transaction_date, sender_account_id, receiver_account_id, originating_branch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING transaction_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		m.Amount,
		m.Description,
		m.Status,
		m.TransactionDate,
		m.SenderAccountID,
		m.ReceiverAccountID,
		m.OriginatingBranchID,
	).Scan(&txn.TransactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransfersByAccountID returns the denormalized history rows for an
// account, newest first. Accounts whose owner was deleted render an empty
// display name; a deleted originating branch renders a null bank label.
func (r *PgxTransferRepository) ListTransfersByAccountID(ctx context.Context, accountID int64) ([]domain.TransferEntry, error) {
	query := `
		SELECT t.amount,
		       sp.first_name, sp.last_name,
		       rp.first_name, rp.last_name,
		       b.bank_name, b.branch_name,
		       t.transaction_date,
		       t.description,
		       t.status
		FROM transactions t
		JOIN accounts sa ON sa.account_id = t.sender_account_id
		JOIN accounts ra ON ra.account_id = t.receiver_account_id
		LEFT JOIN persons sp ON sp.person_id = sa.person_id
		LEFT JOIN persons rp ON rp.person_id = ra.person_id
		LEFT JOIN bank_branches b ON b.branch_id = t.originating_branch_id
		WHERE t.sender_account_id = $1 OR t.receiver_account_id = $1
		ORDER BY t.transaction_date DESC, t.transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for account", err)
	}
	defer rows.Close()

	entries := []domain.TransferEntry{}
	for rows.Next() {
		var e domain.TransferEntry
		var senderFirst, senderLast, receiverFirst, receiverLast *string
		var bankName, branchName, description *string
		var status string
		if err := rows.Scan(
			&e.Amount,
			&senderFirst,
			&senderLast,
			&receiverFirst,
			&receiverLast,
			&bankName,
			&branchName,
			&e.TransactionDate,
			&description,
			&status,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction history row", err)
		}
		// An account whose owner was deleted renders an empty name.
		if senderFirst != nil && senderLast != nil {
			e.SenderName = domain.Person{FirstName: *senderFirst, LastName: *senderLast}.DisplayName()
		}
		if receiverFirst != nil && receiverLast != nil {
			e.ReceiverName = domain.Person{FirstName: *receiverFirst, LastName: *receiverLast}.DisplayName()
		}
		if bankName != nil && branchName != nil {
			label := domain.BankBranch{BankName: *bankName, BranchName: *branchName}.Label()
			e.BankLabel = &label
		}
		if description != nil {
			e.Description = *description
		}
		e.Status = domain.TransactionStatus(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read transaction history rows", err)
	}
	return entries, nil
}
