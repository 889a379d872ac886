package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/middleware"
)

var (
	ErrSenderAccountNotFound   = errors.New("sender account not found")
	ErrReceiverAccountNotFound = errors.New("receiver account not found")
	ErrBranchRequired          = errors.New("originating branch id is required")
)

// transferService executes money movements and reads the resulting ledger.
type transferService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	branchRepo   portsrepo.BranchRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) portssvc.TransferSvcFacade {
	return &transferService{
		accountRepo:  accountRepo,
		branchRepo:   branchRepo,
		transferRepo: transferRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// TransferFunds validates the request, resolves both accounts and the
// originating branch, then hands the atomic write to the transfer repository.
// The sufficiency decision happens inside the repository's database
// transaction against the locked sender balance, so two concurrent transfers
// cannot both spend the same funds. An insufficient balance is not an error:
// the call succeeds and the returned transaction carries status FAILED.
func (s *transferService) TransferFunds(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	sender, err := s.accountRepo.FindAccountByNumber(ctx, req.SenderAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrSenderAccountNotFound
		}
		logger.Error("Failed to resolve sender account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve sender account: %w", err)
	}

	receiver, err := s.accountRepo.FindAccountByNumber(ctx, req.ReceiverAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrReceiverAccountNotFound
		}
		logger.Error("Failed to resolve receiver account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve receiver account: %w", err)
	}

	if req.OriginatingBranch == nil || req.OriginatingBranch.ID == 0 {
		return nil, ErrBranchRequired
	}
	branch, err := s.branchRepo.FindBranchByID(ctx, req.OriginatingBranch.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to resolve originating branch", slog.String("error", err.Error()), slog.Int64("branch_id", req.OriginatingBranch.ID))
		return nil, fmt.Errorf("failed to resolve originating branch: %w", err)
	}

	// The transaction date is always the processing time; a caller-supplied
	// date is never honored for transfers.
	txn := domain.Transaction{
		Amount:              req.Amount,
		Description:         req.Description,
		TransactionDate:     time.Now().UTC(),
		SenderAccountID:     sender.AccountID,
		ReceiverAccountID:   receiver.AccountID,
		OriginatingBranchID: &branch.BranchID,
	}

	saved, err := s.transferRepo.SaveTransfer(ctx, txn)
	if err != nil {
		logger.Error("Failed to save transfer",
			slog.String("error", err.Error()),
			slog.Int64("sender_account_id", sender.AccountID),
			slog.Int64("receiver_account_id", receiver.AccountID),
		)
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	logger.Info("Transfer processed",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.String("status", string(saved.Status)),
		slog.String("amount", saved.Amount.String()),
	)
	return saved, nil
}

// ListTransfersForAccount returns the denormalized history for an account.
func (s *transferService) ListTransfersForAccount(ctx context.Context, accountNumber string) ([]domain.TransferEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve account for history", slog.String("error", err.Error()))
		}
		return nil, err
	}

	entries, err := s.transferRepo.ListTransfersByAccountID(ctx, account.AccountID)
	if err != nil {
		logger.Error("Failed to list transfers for account", slog.String("error", err.Error()), slog.Int64("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	logger.Debug("Transfers listed for account", slog.Int64("account_id", account.AccountID), slog.Int("count", len(entries)))
	return entries, nil
}
