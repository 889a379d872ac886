package dto

import (
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// APIDateFormat is the timestamp layout used in responses. The API renders
// timestamps without a zone suffix; all stored values are UTC.
const APIDateFormat = "2006-01-02T15:04:05"

// BranchRef identifies an existing branch inside a request payload.
type BranchRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateAccountRequest defines the data needed to create a new account.
// The owner is referenced by exact first/last name and the home branch by the
// id carried in the bankName object.
type CreateAccountRequest struct {
	AccountNumber string             `json:"accountNumber" binding:"required"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS LOAN CREDIT_CARD CURRENT_ACCOUNT"`
	CreatedAt     string             `json:"createdAt" binding:"required"`
	Currency      string             `json:"currency" binding:"required,currencycode"`
	FirstName     string             `json:"firstName" binding:"required"`
	LastName      string             `json:"lastName" binding:"required"`
	BankName      BranchRef          `json:"bankName" binding:"required"`
	Balance       *decimal.Decimal   `json:"balance" binding:"required"`
}

// AccountResponse defines the data returned for a created account.
// Owner name and bank name are echoed alongside the stored fields.
type AccountResponse struct {
	ID            int64              `json:"id"`
	AccountNumber string             `json:"accountNumber"`
	AccountType   domain.AccountType `json:"accountType"`
	CreatedAt     string             `json:"createdAt"`
	Currency      string             `json:"currency"`
	Balance       decimal.Decimal    `json:"balance"`
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	BankName      string             `json:"bankName"`
}

// ToAccountResponse converts a domain.Account plus its resolved owner and
// bank name into the response DTO.
func ToAccountResponse(acc *domain.Account, owner *domain.Person, bankName string) AccountResponse {
	return AccountResponse{
		ID:            acc.AccountID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		CreatedAt:     acc.CreatedAt.Format(APIDateFormat),
		Currency:      acc.Currency,
		Balance:       acc.Balance,
		FirstName:     owner.FirstName,
		LastName:      owner.LastName,
		BankName:      bankName,
	}
}
