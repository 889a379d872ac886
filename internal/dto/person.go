package dto

import "github.com/quickquid/quickquid_backend/internal/core/domain"

// CreatePersonRequest defines the data needed to create a new person.
type CreatePersonRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO.
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		ID:        p.PersonID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}
