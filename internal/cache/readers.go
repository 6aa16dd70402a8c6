package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/apperrors"
	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	"github.com/SscSPs/sales_notes_service/internal/middleware"
)

// Readers ask the owning system first so existence checks never see a deleted record.
// The cache answers only while the owning system is failing, and a confirmed miss evicts
// the cached entry.

// CachedCustomerReader decorates a customer directory with a fallback cache.
type CachedCustomerReader struct {
	next  portsrepo.CustomerReader
	cache ReferenceCache
	ttl   time.Duration
}

func NewCachedCustomerReader(next portsrepo.CustomerReader, cache ReferenceCache, ttl time.Duration) *CachedCustomerReader {
	return &CachedCustomerReader{next: next, cache: cache, ttl: ttl}
}

var _ portsrepo.CustomerReader = (*CachedCustomerReader)(nil)

func (r *CachedCustomerReader) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := r.next.FindCustomerByID(ctx, id)
	switch {
	case err == nil:
		if err := r.cache.SetCustomer(ctx, *customer, r.ttl); err != nil {
			logger.Warn("Reference cache write failed", slog.String("kind", "customer"), slog.Int64("id", id), slog.String("error", err.Error()))
		}
		return customer, nil
	case errors.Is(err, apperrors.ErrNotFound):
		if derr := r.cache.DeleteCustomer(ctx, id); derr != nil {
			logger.Warn("Reference cache eviction failed", slog.String("kind", "customer"), slog.Int64("id", id), slog.String("error", derr.Error()))
		}
		return nil, err
	}

	cached, ok, cerr := r.cache.GetCustomer(ctx, id)
	if cerr != nil || !ok {
		return nil, err
	}
	logger.Warn("Customer directory unavailable, serving cached customer", slog.Int64("id", id), slog.String("error", err.Error()))
	return cached, nil
}

// CachedProductReader decorates a product catalog with a fallback cache.
type CachedProductReader struct {
	next  portsrepo.ProductReader
	cache ReferenceCache
	ttl   time.Duration
}

func NewCachedProductReader(next portsrepo.ProductReader, cache ReferenceCache, ttl time.Duration) *CachedProductReader {
	return &CachedProductReader{next: next, cache: cache, ttl: ttl}
}

var _ portsrepo.ProductReader = (*CachedProductReader)(nil)

func (r *CachedProductReader) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := r.next.FindProductByID(ctx, id)
	switch {
	case err == nil:
		r.store(ctx, *product)
		return product, nil
	case errors.Is(err, apperrors.ErrNotFound):
		r.evict(ctx, id)
		return nil, err
	}

	cached, ok, cerr := r.cache.GetProduct(ctx, id)
	if cerr != nil || !ok {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Product catalog unavailable, serving cached product", slog.Int64("id", id), slog.String("error", err.Error()))
	return cached, nil
}

// FindProductsByIDs returns only products the catalog still has. Ids it no longer knows
// are evicted. When the catalog fails, the cache answers only if it holds every id.
func (r *CachedProductReader) FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	fetched, err := r.next.FindProductsByIDs(ctx, ids)
	if err == nil {
		for _, id := range ids {
			if product, ok := fetched[id]; ok {
				r.store(ctx, product)
			} else {
				r.evict(ctx, id)
			}
		}
		return fetched, nil
	}

	found := make(map[int64]domain.Product, len(ids))
	for _, id := range ids {
		cached, ok, cerr := r.cache.GetProduct(ctx, id)
		if cerr != nil || !ok {
			return nil, err
		}
		found[id] = *cached
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Product catalog unavailable, serving cached products", slog.Int("count", len(found)), slog.String("error", err.Error()))
	return found, nil
}

func (r *CachedProductReader) store(ctx context.Context, product domain.Product) {
	if err := r.cache.SetProduct(ctx, product, r.ttl); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Reference cache write failed", slog.String("kind", "product"), slog.Int64("id", product.ID), slog.String("error", err.Error()))
	}
}

func (r *CachedProductReader) evict(ctx context.Context, id int64) {
	if err := r.cache.DeleteProduct(ctx, id); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Reference cache eviction failed", slog.String("kind", "product"), slog.Int64("id", id), slog.String("error", err.Error()))
	}
}

// WrapRepositories decorates the customer and product readers with cache; the sales note repository is untouched.
func WrapRepositories(repos portsrepo.RepositoryProvider, cache ReferenceCache, ttl time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesNoteRepo: repos.SalesNoteRepo,
		CustomerRepo:  NewCachedCustomerReader(repos.CustomerRepo, cache, ttl),
		ProductRepo:   NewCachedProductReader(repos.ProductRepo, cache, ttl),
	}
}
