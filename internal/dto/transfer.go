package dto

import (
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BranchIDRef carries the originating branch id inside a transfer request.
type BranchIDRef struct {
	ID int64 `json:"id"`
}

// CreateTransferRequest defines the data needed to move funds between two
// accounts. Amount positivity and branch presence are enforced by the transfer
// service rather than binding tags so the error taxonomy stays consistent.
type CreateTransferRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	SenderAccount     string          `json:"senderAccount" binding:"required"`
	ReceiverAccount   string          `json:"receiverAccount" binding:"required"`
	Description       string          `json:"description"`
	OriginatingBranch *BranchIDRef    `json:"originatingBranch"`
}

// TransactionResponse defines the data returned for a persisted transfer.
// Field names use snake_case on the wire for compatibility with existing
// API consumers.
type TransactionResponse struct {
	ID                  int64                    `json:"id"`
	Amount              decimal.Decimal          `json:"amount"`
	Description         *string                  `json:"description"`
	Status              domain.TransactionStatus `json:"status"`
	TransactionDate     string                   `json:"transaction_date"`
	SenderAccountID     int64                    `json:"sender_account_id"`
	ReceiverAccountID   int64                    `json:"receiver_account_id"`
	OriginatingBranchID *int64                   `json:"originating_branch_id"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	var description *string
	if t.Description != "" {
		description = &t.Description
	}
	return TransactionResponse{
		ID:                  t.TransactionID,
		Amount:              t.Amount,
		Description:         description,
		Status:              t.Status,
		TransactionDate:     t.TransactionDate.Format(APIDateFormat),
		SenderAccountID:     t.SenderAccountID,
		ReceiverAccountID:   t.ReceiverAccountID,
		OriginatingBranchID: t.OriginatingBranchID,
	}
}

// TransferEntryResponse is one row of an account's denormalized transaction
// history.
type TransferEntryResponse struct {
	Amount      decimal.Decimal          `json:"amount"`
	Sender      string                   `json:"sender"`
	Receiver    string                   `json:"receiver"`
	Bank        *string                  `json:"bank"`
	Date        string                   `json:"date"`
	Description string                   `json:"description"`
	Status      domain.TransactionStatus `json:"status"`
}

// ToTransferEntryResponses converts domain history rows to DTOs.
func ToTransferEntryResponses(entries []domain.TransferEntry) []TransferEntryResponse {
	res := make([]TransferEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = TransferEntryResponse{
			Amount:      e.Amount,
			Sender:      e.SenderName,
			Receiver:    e.ReceiverName,
			Bank:        e.BankLabel,
			Date:        e.TransactionDate.Format(APIDateFormat),
			Description: e.Description,
			Status:      e.Status,
		}
	}
	return res
}
