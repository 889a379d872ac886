package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/repositories/database/pgsql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// These tests run against a real PostgreSQL instance and are skipped unless
// QUICKQUID_TEST_PGSQL_URL points at a throwaway database.

var testSchema = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		person_id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS bank_branches (
		branch_id BIGSERIAL PRIMARY KEY,
		bank_name TEXT NOT NULL,
		branch_name TEXT NOT NULL,
		bank_address TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id BIGSERIAL PRIMARY KEY,
		account_number TEXT NOT NULL UNIQUE,
		account_type TEXT NOT NULL,
		currency CHAR(3) NOT NULL,
		balance NUMERIC(20,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		person_id BIGINT REFERENCES persons(person_id) ON DELETE SET NULL,
		branch_id BIGINT REFERENCES bank_branches(branch_id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id BIGSERIAL PRIMARY KEY,
		amount NUMERIC(20,4) NOT NULL CHECK (amount > 0),
		description TEXT,
		status TEXT NOT NULL,
		transaction_date TIMESTAMPTZ NOT NULL,
		sender_account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		receiver_account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		originating_branch_id BIGINT REFERENCES bank_branches(branch_id) ON DELETE SET NULL
	);`,
}

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	databaseURL := os.Getenv("QUICKQUID_TEST_PGSQL_URL")
	if databaseURL == "" {
		t.Skip("set QUICKQUID_TEST_PGSQL_URL to run pgsql integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	for _, stmt := range testSchema {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	t.Cleanup(func() {
		_, err := pool.Exec(ctx, `TRUNCATE transactions, accounts, bank_branches, persons RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		pool.Close()
	})
	return pool
}

type fixture struct {
	senderID   int64
	receiverID int64
	branchID   int64
}

func seedAccounts(t *testing.T, pool *pgxpool.Pool, senderBalance, receiverBalance decimal.Decimal) fixture {
	t.Helper()
	ctx := context.Background()

	var f fixture
	var senderPersonID, receiverPersonID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO persons (first_name, last_name) VALUES ('Ada', 'Lovelace') RETURNING person_id`).Scan(&senderPersonID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO persons (first_name, last_name) VALUES ('Grace', 'Hopper') RETURNING person_id`).Scan(&receiverPersonID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO bank_branches (bank_name, branch_name, bank_address) VALUES ('First National', 'Downtown', '1 Main St') RETURNING branch_id`).Scan(&f.branchID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO accounts (account_number, account_type, currency, balance, person_id, branch_id)
		 VALUES ('ACC-1001', 'SAVINGS', 'USD', $1, $2, $3) RETURNING account_id`,
		senderBalance, senderPersonID, f.branchID).Scan(&f.senderID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO accounts (account_number, account_type, currency, balance, person_id, branch_id)
		 VALUES ('ACC-2002', 'CURRENT_ACCOUNT', 'USD', $1, $2, $3) RETURNING account_id`,
		receiverBalance, receiverPersonID, f.branchID).Scan(&f.receiverID))
	return f
}

func accountBalance(t *testing.T, pool *pgxpool.Pool, accountID int64) decimal.Decimal {
	t.Helper()
	var balance decimal.Decimal
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT balance FROM accounts WHERE account_id = $1`, accountID).Scan(&balance))
	return balance
}

func TestSaveTransfer_Completed(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAccounts(t, pool, decimal.NewFromInt(500), decimal.NewFromInt(50))
	repo := pgsql.NewTransferRepository(pool, pgsql.NewAccountRepository(pool))

	saved, err := repo.SaveTransfer(context.Background(), domain.Transaction{
		Amount:              decimal.NewFromInt(100),
		Description:         "rent",
		TransactionDate:     time.Now().UTC(),
		SenderAccountID:     f.senderID,
		ReceiverAccountID:   f.receiverID,
		OriginatingBranchID: &f.branchID,
	})

	require.NoError(t, err)
	require.Equal(t, domain.Completed, saved.Status)
	require.NotZero(t, saved.TransactionID)
	require.True(t, accountBalance(t, pool, f.senderID).Equal(decimal.NewFromInt(400)))
	require.True(t, accountBalance(t, pool, f.receiverID).Equal(decimal.NewFromInt(150)))
}

func TestSaveTransfer_InsufficientBalance(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAccounts(t, pool, decimal.NewFromInt(500), decimal.NewFromInt(50))
	repo := pgsql.NewTransferRepository(pool, pgsql.NewAccountRepository(pool))

	saved, err := repo.SaveTransfer(context.Background(), domain.Transaction{
		Amount:            decimal.NewFromInt(9000),
		TransactionDate:   time.Now().UTC(),
		SenderAccountID:   f.senderID,
		ReceiverAccountID: f.receiverID,
	})

	// A short balance records a FAILED row and moves nothing.
	require.NoError(t, err)
	require.Equal(t, domain.Failed, saved.Status)
	require.NotZero(t, saved.TransactionID)
	require.True(t, accountBalance(t, pool, f.senderID).Equal(decimal.NewFromInt(500)))
	require.True(t, accountBalance(t, pool, f.receiverID).Equal(decimal.NewFromInt(50)))
}

func TestSaveTransfer_SelfTransfer(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAccounts(t, pool, decimal.NewFromInt(300), decimal.NewFromInt(0))
	repo := pgsql.NewTransferRepository(pool, pgsql.NewAccountRepository(pool))

	saved, err := repo.SaveTransfer(context.Background(), domain.Transaction{
		Amount:            decimal.NewFromInt(100),
		TransactionDate:   time.Now().UTC(),
		SenderAccountID:   f.senderID,
		ReceiverAccountID: f.senderID,
	})

	require.NoError(t, err)
	require.Equal(t, domain.Completed, saved.Status)
	require.True(t, accountBalance(t, pool, f.senderID).Equal(decimal.NewFromInt(300)))
}

func TestListTransfersByAccountID_Ordering(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAccounts(t, pool, decimal.NewFromInt(1000), decimal.NewFromInt(0))
	repo := pgsql.NewTransferRepository(pool, pgsql.NewAccountRepository(pool))
	ctx := context.Background()

	older := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	_, err := repo.SaveTransfer(ctx, domain.Transaction{
		Amount:              decimal.NewFromInt(10),
		Description:         "first",
		TransactionDate:     older,
		SenderAccountID:     f.senderID,
		ReceiverAccountID:   f.receiverID,
		OriginatingBranchID: &f.branchID,
	})
	require.NoError(t, err)
	_, err = repo.SaveTransfer(ctx, domain.Transaction{
		Amount:            decimal.NewFromInt(5000),
		Description:       "too big",
		TransactionDate:   newer,
		SenderAccountID:   f.senderID,
		ReceiverAccountID: f.receiverID,
	})
	require.NoError(t, err)

	entries, err := repo.ListTransfersByAccountID(ctx, f.senderID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first, FAILED rows included.
	require.Equal(t, "too big", entries[0].Description)
	require.Equal(t, domain.Failed, entries[0].Status)
	require.Equal(t, "first", entries[1].Description)
	require.Equal(t, domain.Completed, entries[1].Status)
	require.Equal(t, "Ada Lovelace", entries[1].SenderName)
	require.Equal(t, "Grace Hopper", entries[1].ReceiverName)
	require.NotNil(t, entries[1].BankLabel)
	require.Equal(t, "First National - Downtown", *entries[1].BankLabel)
	require.Nil(t, entries[0].BankLabel)
}
