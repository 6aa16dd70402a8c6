package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	"github.com/SscSPs/sales_notes_service/internal/models"
	"github.com/SscSPs/sales_notes_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCustomerRepository reads the customers table owned by the customer directory.
type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerReader {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerReader = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT id, name, email, phone FROM customers WHERE id = $1;`
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", id))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find customer", err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// PgxProductRepository reads the products table owned by the product catalog.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductReader {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductReader = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT id, name, price FROM products WHERE id = $1;`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find product", err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	query := `SELECT id, name, price FROM products WHERE id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query products", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ID, &m.Name, &m.Price); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan product", err)
		}
		products[m.ID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate products", err)
	}
	return products, nil
}
