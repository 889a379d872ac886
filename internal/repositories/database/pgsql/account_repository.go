package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	"github.com/quickquid/quickquid_backend/internal/models"
	"github.com/quickquid/quickquid_backend/internal/utils/mapping"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts an account and returns it with the generated id.
// Duplicate account numbers map to apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_number, account_type, currency, balance, created_at, person_id, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING account_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.AccountNumber,
		m.AccountType,
		m.Currency,
		m.Balance,
		m.CreatedAt,
		m.PersonID,
		m.BranchID,
	).Scan(&account.AccountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert account "+account.AccountNumber, err)
	}
	return &account, nil
}

const accountColumns = `account_id, account_number, account_type, currency, balance, created_at, person_id, branch_id`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountType,
		&m.Currency,
		&m.Balance,
		&m.CreatedAt,
		&m.PersonID,
		&m.BranchID,
	)
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by surrogate id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID", err)
	}
	return account, nil
}

// FindAccountByNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by number", err)
	}
	return account, nil
}

// FindAccountsByIDsForUpdate selects accounts in ascending id order and locks
// the rows for update within the given transaction. Locking in id order keeps
// concurrent transfers over the same account pair deadlock-free.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.AccountNumber,
			&m.AccountType,
			&m.Currency,
			&m.Balance,
			&m.CreatedAt,
			&m.PersonID,
			&m.BranchID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read locked account rows", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.ErrNotFound
		}
	}
	return accounts, nil
}

// UpdateAccountBalanceInTx overwrites one account's balance within the given
// transaction.
func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `UPDATE accounts SET balance = $1 WHERE account_id = $2;`
	tag, err := tx.Exec(ctx, query, account.Balance, account.AccountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account balance", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
