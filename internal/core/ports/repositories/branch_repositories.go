package repositories

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
)

// BranchReader defines read operations for bank branch data
type BranchReader interface {
	// FindBranchByID retrieves a branch by surrogate id.
	FindBranchByID(ctx context.Context, branchID int64) (*domain.BankBranch, error)

	// ListBranches retrieves every branch ordered by id.
	ListBranches(ctx context.Context) ([]domain.BankBranch, error)
}

// BranchWriter defines write operations for bank branch data
type BranchWriter interface {
	// SaveBranch persists a new branch and returns it with the generated id.
	SaveBranch(ctx context.Context, branch domain.BankBranch) (*domain.BankBranch, error)
}

// BranchRepositoryFacade combines all branch-related repository interfaces
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
