package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the final state of a transfer attempt.
type TransactionStatus string

const (
	Completed TransactionStatus = "COMPLETED"
	Pending   TransactionStatus = "PENDING"
	Failed    TransactionStatus = "FAILED"
)

// Transaction is one ledger row describing a transfer attempt between two
// accounts. Rows are immutable after creation, whatever their status: a FAILED
// attempt stays in the ledger so the history of attempted transfers is
// complete.
type Transaction struct {
	TransactionID       int64
	Amount              decimal.Decimal
	Description         string
	Status              TransactionStatus
	TransactionDate     time.Time
	SenderAccountID     int64
	ReceiverAccountID   int64
	OriginatingBranchID *int64
}

// DecideTransferStatus applies the funding rule: a transfer completes only
// when the sender holds at least the transferred amount. Insufficient balance
// is not an error, it yields a FAILED ledger row with no balance movement.
func DecideTransferStatus(senderBalance, amount decimal.Decimal) TransactionStatus {
	if senderBalance.LessThan(amount) {
		return Failed
	}
	return Completed
}

// ApplyTransfer moves amount from sender to receiver. Callers must only invoke
// it for COMPLETED transfers; it performs no sufficiency check of its own.
// A self-transfer (sender == receiver) nets to zero.
func ApplyTransfer(sender, receiver *Account, amount decimal.Decimal) {
	if sender.AccountID == receiver.AccountID {
		return
	}
	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
}

// TransferEntry is the denormalized history row returned by the account
// transaction listing: person display names and the originating branch label
// joined onto the transaction.
type TransferEntry struct {
	Amount          decimal.Decimal
	SenderName      string
	ReceiverName    string
	BankLabel       *string
	TransactionDate time.Time
	Description     string
	Status          TransactionStatus
}
