package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/database/postgres"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// Repositories holds every repository implementation the application uses.
type Repositories struct {
	Ledger  repository.Ledger
	Economy repository.Economy
	Catalog repository.Catalog
	Craft   repository.Craft
	Pet     repository.Pet
}

// InitializeRepositories creates all repository implementations on the shared
// connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ledger:  postgres.NewLedgerRepository(dbPool),
		Economy: postgres.NewEconomyRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
		Craft:   postgres.NewCraftRepository(dbPool),
		Pet:     postgres.NewPetRepository(dbPool),
	}
}
