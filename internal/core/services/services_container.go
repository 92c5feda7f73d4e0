package services

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
)

// RepositoryProvider is what the service wiring needs from the persistence
// layer.
type RepositoryProvider interface {
	Account() portsrepo.AccountRepository
	Category() portsrepo.CategoryRepository
	Transaction() portsrepo.TransactionRepository
	User() portsrepo.UserRepository
}

// NewServiceContainer wires every service against the provided repositories.
func NewServiceContainer(repos RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.Account()),
		Category:    NewCategoryService(repos.Category()),
		Transaction: NewTransactionService(repos.Transaction()),
		User:        NewUserService(repos.User()),
	}
}
