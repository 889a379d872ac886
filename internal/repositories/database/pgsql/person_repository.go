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

type PgxPersonRepository struct {
	BaseRepository
}

// NewPersonRepository creates a new repository for person data.
func NewPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

// SavePerson inserts a person and returns it with the generated id.
func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	query := `
		INSERT INTO persons (first_name, last_name, created_at)
		VALUES ($1, $2, $3)
		RETURNING person_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		person.CreatedAt,
	).Scan(&person.PersonID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert person", err)
	}
	return &person, nil
}

// FindPersonByID retrieves a person by surrogate id.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	query := `
		SELECT person_id, first_name, last_name, created_at
		FROM persons
		WHERE person_id = $1;
	`
	var m models.Person
	err := r.Pool.QueryRow(ctx, query, personID).Scan(
		&m.PersonID,
		&m.FirstName,
		&m.LastName,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find person by ID", err)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}

// FindPersonByName retrieves a person by exact name match. When multiple
// persons share the same name the row with the lowest id wins.
func (r *PgxPersonRepository) FindPersonByName(ctx context.Context, firstName, lastName string) (*domain.Person, error) {
	query := `
		SELECT person_id, first_name, last_name, created_at
		FROM persons
		WHERE first_name = $1 AND last_name = $2
		ORDER BY person_id
		LIMIT 1;
	`
	var m models.Person
	err := r.Pool.QueryRow(ctx, query, firstName, lastName).Scan(
		&m.PersonID,
		&m.FirstName,
		&m.LastName,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find person by name", err)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}
