package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB row shape for the transactions table.
type Transaction struct {
	TransactionID       int64           `db:"transaction_id"`
	Amount              decimal.Decimal `db:"amount"`
	Description         *string         `db:"description"`
	Status              string          `db:"status"`
	TransactionDate     time.Time       `db:"transaction_date"`
	SenderAccountID     int64           `db:"sender_account_id"`
	ReceiverAccountID   int64           `db:"receiver_account_id"`
	OriginatingBranchID *int64          `db:"originating_branch_id"`
}
