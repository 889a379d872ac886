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
	ErrPersonNotFound   = errors.New("person not found")
	ErrBranchIDRequired = errors.New("bank branch ID not found in bankName")
)

// accountService provides account creation and directory lookups.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	personRepo  portsrepo.PersonRepositoryFacade
	branchRepo  portsrepo.BranchRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, personRepo portsrepo.PersonRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		personRepo:  personRepo,
		branchRepo:  branchRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// parseCreatedAt parses the creation timestamp from the request. RFC3339 with
// a bare Z suffix is the documented format; a zone-less timestamp is accepted
// for compatibility and treated as UTC.
func parseCreatedAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dto.APIDateFormat, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CreateAccount persists a new account owned by an existing person at an
// existing branch.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, *domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	createdAt, err := parseCreatedAt(req.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid date format for createdAt", apperrors.ErrValidation)
	}

	person, err := s.personRepo.FindPersonByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, ErrPersonNotFound)
		}
		logger.Error("Failed to resolve account owner", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to resolve account owner: %w", err)
	}

	if req.BankName.ID == 0 {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, ErrBranchIDRequired)
	}
	branch, err := s.branchRepo.FindBranchByID(ctx, req.BankName.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		logger.Error("Failed to resolve home branch", slog.String("error", err.Error()), slog.Int64("branch_id", req.BankName.ID))
		return nil, nil, fmt.Errorf("failed to resolve home branch: %w", err)
	}

	account := domain.Account{
		AccountNumber: req.AccountNumber,
		AccountType:   req.AccountType,
		Currency:      req.Currency,
		Balance:       *req.Balance,
		CreatedAt:     createdAt,
		PersonID:      &person.PersonID,
		BranchID:      &branch.BranchID,
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, err
		}
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_number", req.AccountNumber))
		return nil, nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created successfully", slog.Int64("account_id", saved.AccountID), slog.String("account_number", saved.AccountNumber))
	return saved, person, nil
}

// GetAccountByNumber resolves an account by its account number.
func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by number", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}
