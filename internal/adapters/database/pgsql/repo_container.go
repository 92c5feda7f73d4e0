package pgsql

import (
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepoContainer bundles the pgx-backed repositories behind the
// RepositoryProvider the service wiring expects.
type RepoContainer struct {
	account     portsrepo.AccountRepository
	category    portsrepo.CategoryRepository
	transaction portsrepo.TransactionRepository
	user        portsrepo.UserRepository
}

// NewRepoContainer creates all repositories sharing one connection pool.
func NewRepoContainer(pool *pgxpool.Pool) *RepoContainer {
	return &RepoContainer{
		account:     newPgxAccountRepository(pool),
		category:    newPgxCategoryRepository(pool),
		transaction: newPgxTransactionRepository(pool),
		user:        newPgxUserRepository(pool),
	}
}

func (c *RepoContainer) Account() portsrepo.AccountRepository         { return c.account }
func (c *RepoContainer) Category() portsrepo.CategoryRepository       { return c.category }
func (c *RepoContainer) Transaction() portsrepo.TransactionRepository { return c.transaction }
func (c *RepoContainer) User() portsrepo.UserRepository               { return c.user }
