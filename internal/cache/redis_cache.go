package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
)

const keyPrefix = "sales-notes:ref:"

func customerKey(id int64) string {
	return keyPrefix + "customer:" + strconv.FormatInt(id, 10)
}

func productKey(id int64) string {
	return keyPrefix + "product:" + strconv.FormatInt(id, 10)
}

type RedisReferenceCache struct {
	client *redis.Client
}

func NewRedisReferenceCache(addr string, password string, db int) *RedisReferenceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisReferenceCache{client: client}
}

func (c *RedisReferenceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisReferenceCache) Close() error {
	return c.client.Close()
}

func (c *RedisReferenceCache) GetCustomer(ctx context.Context, id int64) (*domain.Customer, bool, error) {
	var customer domain.Customer
	found, err := c.get(ctx, customerKey(id), &customer)
	if !found || err != nil {
		return nil, false, err
	}
	return &customer, true, nil
}

func (c *RedisReferenceCache) SetCustomer(ctx context.Context, customer domain.Customer, ttl time.Duration) error {
	return c.set(ctx, customerKey(customer.ID), customer, ttl)
}

func (c *RedisReferenceCache) DeleteCustomer(ctx context.Context, id int64) error {
	return c.client.Del(ctx, customerKey(id)).Err()
}

func (c *RedisReferenceCache) GetProduct(ctx context.Context, id int64) (*domain.Product, bool, error) {
	var product domain.Product
	found, err := c.get(ctx, productKey(id), &product)
	if !found || err != nil {
		return nil, false, err
	}
	return &product, true, nil
}

func (c *RedisReferenceCache) SetProduct(ctx context.Context, product domain.Product, ttl time.Duration) error {
	return c.set(ctx, productKey(product.ID), product, ttl)
}

func (c *RedisReferenceCache) DeleteProduct(ctx context.Context, id int64) error {
	return c.client.Del(ctx, productKey(id)).Err()
}

func (c *RedisReferenceCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisReferenceCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
