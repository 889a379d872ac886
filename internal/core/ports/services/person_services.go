package services

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
	"github.com/quickquid/quickquid_backend/internal/dto"
)

// PersonSvcFacade defines person operations exposed to handlers.
type PersonSvcFacade interface {
	// CreatePerson persists a new person after validating both name fields.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)

	// GetPersonByName resolves a person by exact name match.
	GetPersonByName(ctx context.Context, firstName, lastName string) (*domain.Person, error)
}
