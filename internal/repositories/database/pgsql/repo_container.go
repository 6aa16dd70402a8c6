package pgsql

import (
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesNoteRepo: newPgxSalesNoteRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
	}
}
