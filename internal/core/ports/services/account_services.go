package services

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/dto"
)

// AccountSvcFacade defines account operations exposed to handlers.
type AccountSvcFacade interface {
	// CreateAccount persists a new account. The owner is resolved by name and
	// the home branch by the id in the request; both must exist. The resolved
	// owner is returned alongside the account for response rendering.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, *domain.Person, error)

	// GetAccountByNumber resolves an account by its account number.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}
