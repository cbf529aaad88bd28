package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisclient "github.com/campuscloset/marketplace/cmd/redis"
	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	"github.com/campuscloset/marketplace/utils/ratelimit"
	"github.com/redis/go-redis/v9"
)

// redisStore persists rate-limit records as TTL'd JSON values, one key per
// (identifier, limit type). Satisfies ratelimit.Store.
type redisStore struct {
}

func NewStore() ratelimit.Store {
	return &redisStore{}
}

func recordKey(identifier string, limitType constant.RateLimitType) string {
	return fmt.Sprintf("ratelimit:%s:%s", limitType, identifier)
}

func (s *redisStore) Get(ctx context.Context, identifier string, limitType constant.RateLimitType) (*model.RateLimitRecord, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	val, err := client.Get(ctx, recordKey(identifier, limitType)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec model.RateLimitRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *redisStore) Put(ctx context.Context, identifier string, limitType constant.RateLimitType, rec *model.RateLimitRecord, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return client.Set(ctx, recordKey(identifier, limitType), body, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, identifier string, limitType constant.RateLimitType) error {
	client := redisclient.Get()
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return client.Del(ctx, recordKey(identifier, limitType)).Err()
}
