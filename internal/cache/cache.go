package cache

import (
	"context"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
)

// ReferenceCache stores customer and product lookups fetched from their owning systems.
type ReferenceCache interface {
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, bool, error)
	SetCustomer(ctx context.Context, customer domain.Customer, ttl time.Duration) error
	DeleteCustomer(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, bool, error)
	SetProduct(ctx context.Context, product domain.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, id int64) error
}

type NoopReferenceCache struct{}

func (NoopReferenceCache) GetCustomer(_ context.Context, _ int64) (*domain.Customer, bool, error) {
	return nil, false, nil
}

func (NoopReferenceCache) SetCustomer(_ context.Context, _ domain.Customer, _ time.Duration) error {
	return nil
}

func (NoopReferenceCache) GetProduct(_ context.Context, _ int64) (*domain.Product, bool, error) {
	return nil, false, nil
}

func (NoopReferenceCache) SetProduct(_ context.Context, _ domain.Product, _ time.Duration) error {
	return nil
}

func (NoopReferenceCache) DeleteCustomer(_ context.Context, _ int64) error {
	return nil
}

func (NoopReferenceCache) DeleteProduct(_ context.Context, _ int64) error {
	return nil
}
