package services

import (
	portsrepo "github.com/quickquid/quickquid_backend/internal/core/ports/repositories"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Person:   NewPersonService(repos.PersonRepo),
		Branch:   NewBranchService(repos.BranchRepo),
		Account:  NewAccountService(repos.AccountRepo, repos.PersonRepo, repos.BranchRepo),
		Transfer: NewTransferService(repos.TransferRepo, repos.AccountRepo, repos.BranchRepo),
	}
}
