package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/middleware"
)

// branchService provides bank branch creation and lookup.
type branchService struct {
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new BranchService.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

// CreateBranch persists a new bank branch. All three fields are required.
func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.BankBranch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bankName := strings.TrimSpace(req.BankName)
	branchName := strings.TrimSpace(req.BranchName)
	bankAddress := strings.TrimSpace(req.BankAddress)
	if bankName == "" || branchName == "" || bankAddress == "" {
		return nil, fmt.Errorf("%w: bankName, branchName and bankAddress are required", apperrors.ErrValidation)
	}

	branch := domain.BankBranch{
		BankName:    bankName,
		BranchName:  branchName,
		BankAddress: bankAddress,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.branchRepo.SaveBranch(ctx, branch)
	if err != nil {
		logger.Error("Failed to save branch in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save branch: %w", err)
	}

	logger.Info("Branch created successfully", slog.Int64("branch_id", saved.BranchID), slog.String("bank_name", saved.BankName))
	return saved, nil
}

// GetBranchByID resolves a branch by id.
func (s *branchService) GetBranchByID(ctx context.Context, branchID int64) (*domain.BankBranch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find branch by ID", slog.String("error", err.Error()), slog.Int64("branch_id", branchID))
		}
		return nil, err
	}
	return branch, nil
}

// ListBranches returns every branch ordered by id.
func (s *branchService) ListBranches(ctx context.Context) ([]domain.BankBranch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		logger.Error("Failed to list branches", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	logger.Debug("Branches listed", slog.Int("count", len(branches)))
	return branches, nil
}
