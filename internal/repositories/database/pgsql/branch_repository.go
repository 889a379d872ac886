package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	"github.com/quickquid/quickquid_backend/internal/core/domain"
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	"github.com/quickquid/quickquid_backend/internal/models"
	"github.com/quickquid/quickquid_backend/internal/utils/mapping"
)

type PgxBranchRepository struct {
	BaseRepository
}

// NewBranchRepository creates a new repository for bank branch data.
func NewBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

// SaveBranch inserts a branch and returns it with the generated id.
func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.BankBranch) (*domain.BankBranch, error) {
	query := `
		INSERT INTO bank_branches (bank_name, branch_name, bank_address, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING branch_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		branch.BankName,
		branch.BranchName,
		branch.BankAddress,
		branch.CreatedAt,
	).Scan(&branch.BranchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert bank branch", err)
	}
	return &branch, nil
}

// FindBranchByID retrieves a branch by surrogate id.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID int64) (*domain.BankBranch, error) {
	query := `
		SELECT branch_id, bank_name, branch_name, bank_address, created_at
		FROM bank_branches
		WHERE branch_id = $1;
	`
	var m models.BankBranch
	err := r.Pool.QueryRow(ctx, query, branchID).Scan(
		&m.BranchID,
		&m.BankName,
		&m.BranchName,
		&m.BankAddress,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find branch by ID", err)
	}
	branch := mapping.ToDomainBranch(m)
	return &branch, nil
}

// ListBranches retrieves every branch ordered by id.
func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.BankBranch, error) {
	query := `
		SELECT branch_id, bank_name, branch_name, bank_address, created_at
		FROM bank_branches
		ORDER BY branch_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank branches", err)
	}
	defer rows.Close()

	branches := []domain.BankBranch{}
	for rows.Next() {
		var m models.BankBranch
		if err := rows.Scan(
			&m.BranchID,
			&m.BankName,
			&m.BranchName,
			&m.BankAddress,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank branch row", err)
		}
		branches = append(branches, mapping.ToDomainBranch(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read bank branch rows", err)
	}
	return branches, nil
}
