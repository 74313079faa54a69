package idempotent

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

var _ IdempotencyService = (*RedisIdempotencyService)(nil)

type RedisIdempotencyService struct {
	client redis.Cmdable
	// 幂等键的有效期，过期之后同一个键可以再次请求
	expiry time.Duration
}

// NewRedisIdempotencyService 创建一个新的 redis 幂等性服务
func NewRedisIdempotencyService(client redis.Cmdable, expiry time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{client: client, expiry: expiry}
}

func (s *RedisIdempotencyService) getKey(key string) string {
	return fmt.Sprintf("hailstorm:idempotency:%s", key)
}

func (s *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.getKey(key), "1", s.expiry).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (s *RedisIdempotencyService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	if len(keys) == 0 {
		return []bool{}, nil
	}
	// 使用管道批量执行SetNX命令
	pipe := s.client.Pipeline()
	cmds := make([]*redis.BoolCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.SetNX(ctx, s.getKey(key), "1", s.expiry)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	results := make([]bool, len(keys))
	for i, cmd := range cmds {
		ok, err := cmd.Result()
		if err != nil {
			return nil, err
		}
		results[i] = !ok
	}
	return results, nil
}

func (s *RedisIdempotencyService) Release(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		fullKeys = append(fullKeys, s.getKey(key))
	}
	return s.client.Del(ctx, fullKeys...).Err()
}
