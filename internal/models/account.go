package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the DB row shape for the accounts table.
// PersonID and BranchID are nullable foreign keys (ON DELETE SET NULL).
type Account struct {
	AccountID     int64           `db:"account_id"`
	AccountNumber string          `db:"account_number"`
	AccountType   string          `db:"account_type"`
	Currency      string          `db:"currency"`
	Balance       decimal.Decimal `db:"balance"`
	CreatedAt     time.Time       `db:"created_at"`
	PersonID      *int64          `db:"person_id"`
	BranchID      *int64          `db:"branch_id"`
}
