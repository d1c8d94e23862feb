package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"speedyy-pricing/cart-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) QuoteKey(id string) string {
	return "cart:quote:" + id
}

func (c *RedisCache) Save(ctx context.Context, quote *domain.CartQuote) error {
	payload, err := json.Marshal(quote)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.QuoteKey(quote.ID), payload, c.TTL).Err()
}

func (c *RedisCache) Load(ctx context.Context, id string) (*domain.CartQuote, error) {
	payload, err := c.Client.Get(ctx, c.QuoteKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var quote domain.CartQuote
	if err := json.Unmarshal(payload, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
