package repositories

import (
	"context"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
)

// CustomerReader looks customers up in the external customer directory.
type CustomerReader interface {
	// FindCustomerByID returns apperrors.ErrNotFound when the customer does not exist.
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// ProductReader looks products up in the external product catalog.
type ProductReader interface {
	// FindProductByID returns apperrors.ErrNotFound when the product does not exist.
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)

	// FindProductsByIDs returns the products that exist; missing ids are simply absent from the map.
	FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
}
