package repositories

import (
	"context"

	"github.com/quickquid/quickquid_backend/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a person by surrogate id.
	FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error)

	// FindPersonByName retrieves a person by exact first and last name match.
	// When several persons share a name the one with the lowest id wins; the
	// API offers no disambiguation (known limitation).
	FindPersonByName(ctx context.Context, firstName, lastName string) (*domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson persists a new person and returns it with the generated id.
	SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error)
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
