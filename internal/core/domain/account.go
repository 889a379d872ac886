package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the product category of an account.
type AccountType string

const (
	Savings        AccountType = "SAVINGS"
	Loan           AccountType = "LOAN"
	CreditCard     AccountType = "CREDIT_CARD"
	CurrentAccount AccountType = "CURRENT_ACCOUNT"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Savings, Loan, CreditCard, CurrentAccount:
		return true
	}
	return false
}

// Account is a bank account holding a balance in a single currency.
// PersonID and BranchID are weak references: deleting the referenced person or
// branch nulls the column, it never cascades to the account.
type Account struct {
	AccountID     int64
	AccountNumber string
	AccountType   AccountType
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	PersonID      *int64
	BranchID      *int64
}
