package services

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/dto"
)

// BranchSvcFacade defines bank branch operations exposed to handlers.
type BranchSvcFacade interface {
	// CreateBranch persists a new branch after validating all fields.
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.BankBranch, error)

	// GetBranchByID resolves a branch by id.
	GetBranchByID(ctx context.Context, branchID int64) (*domain.BankBranch, error)

	// ListBranches returns every branch.
	ListBranches(ctx context.Context) ([]domain.BankBranch, error)
}
