package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyExpiration = 48 * time.Hour

type RedisIdempotencyService struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisIdempotencyService(client redis.Cmdable) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client:     client,
		expiration: defaultKeyExpiration,
	}
}

// Exists 原子地检查并占用key，返回true表示key已被占用过
func (s *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, 1, s.expiration).Result()
	if err != nil {
		return false, err
	}
	// SetNX成功表示首次出现
	return !ok, nil
}

func (s *RedisIdempotencyService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	res := make([]bool, 0, len(keys))
	for _, key := range keys {
		exists, err := s.Exists(ctx, key)
		if err != nil {
			return nil, err
		}
		res = append(res, exists)
	}
	return res, nil
}
