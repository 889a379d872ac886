package mapping

import (
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/models"
)

// ToDomainPerson converts a DB person row to its domain representation.
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:  m.PersonID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainBranch converts a DB branch row to its domain representation.
func ToDomainBranch(m models.BankBranch) domain.BankBranch {
	return domain.BankBranch{
		BranchID:    m.BranchID,
		BankName:    m.BankName,
		BranchName:  m.BranchName,
		BankAddress: m.BankAddress,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainAccount converts a DB account row to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		AccountType:   domain.AccountType(m.AccountType),
		Currency:      m.Currency,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		PersonID:      m.PersonID,
		BranchID:      m.BranchID,
	}
}

// ToModelAccount converts a domain account to its DB row shape.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:     a.AccountID,
		AccountNumber: a.AccountNumber,
		AccountType:   string(a.AccountType),
		Currency:      a.Currency,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		PersonID:      a.PersonID,
		BranchID:      a.BranchID,
	}
}

// ToDomainTransaction converts a DB transaction row to its domain form.
// A NULL description maps to the empty string.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	description := ""
	if m.Description != nil {
		description = *m.Description
	}
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Amount:              m.Amount,
		Description:         description,
		Status:              domain.TransactionStatus(m.Status),
		TransactionDate:     m.TransactionDate,
		SenderAccountID:     m.SenderAccountID,
		ReceiverAccountID:   m.ReceiverAccountID,
		OriginatingBranchID: m.OriginatingBranchID,
	}
}

// ToModelTransaction converts a domain transaction to its DB row shape.
// An empty description is stored as NULL.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	var description *string
	if t.Description != "" {
		description = &t.Description
	}
	return models.Transaction{
		TransactionID:       t.TransactionID,
		Amount:              t.Amount,
		Description:         description,
		Status:              string(t.Status),
		TransactionDate:     t.TransactionDate,
		SenderAccountID:     t.SenderAccountID,
		ReceiverAccountID:   t.ReceiverAccountID,
		OriginatingBranchID: t.OriginatingBranchID,
	}
}
