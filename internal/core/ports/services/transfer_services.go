package services

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/dto"
)

// TransferSvcFacade defines the money movement and history operations.
type TransferSvcFacade interface {
	// TransferFunds validates and executes a transfer between two accounts,
	// always producing exactly one transaction row (COMPLETED or FAILED)
	// unless a validation or lookup error aborts the attempt first.
	TransferFunds(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error)

	// ListTransfersForAccount returns the denormalized transaction history for
	// the account with the given number.
	ListTransfersForAccount(ctx context.Context, accountNumber string) ([]domain.TransferEntry, error)
}
