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

// personService provides person creation and lookup.
type personService struct {
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates a new PersonService.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{personRepo: personRepo}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

// CreatePerson persists a new person. Blank (or whitespace-only) name fields
// are rejected before any repository call.
func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: firstName and lastName are required", apperrors.ErrValidation)
	}

	person := domain.Person{
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.personRepo.SavePerson(ctx, person)
	if err != nil {
		logger.Error("Failed to save person in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save person: %w", err)
	}

	logger.Info("Person created successfully", slog.Int64("person_id", saved.PersonID))
	return saved, nil
}

// GetPersonByName resolves a person by exact name match.
func (s *personService) GetPersonByName(ctx context.Context, firstName, lastName string) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	person, err := s.personRepo.FindPersonByName(ctx, firstName, lastName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find person by name", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return person, nil
}
