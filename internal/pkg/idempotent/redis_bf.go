package idempotent

import (
	"context"
	"errors"
	"fmt"
	"github.com/ecodeclub/ekit/slice"
	"github.com/redis/go-redis/v9"
	"strings"
)

var _ IdempotencyService = (*BloomIdempotencyService)(nil)

// BloomIdempotencyService 基于 RedisBloom 的幂等检查，有误判的可能：
// 一个新的键可能被当成已经存在，但是已经存在的键一定能判断出来
type BloomIdempotencyService struct {
	client     redis.Cmdable
	filterName string
}

// NewBloomIdempotencyService 创建布隆过滤器，过滤器已经存在的时候直接复用
func NewBloomIdempotencyService(ctx context.Context, client redis.Cmdable,
	filterName string, capacity int64, errorRate float64) (*BloomIdempotencyService, error) {
	err := client.BFReserve(ctx, filterName, errorRate, capacity).Err()
	if err != nil && !strings.Contains(err.Error(), "item exists") {
		return nil, fmt.Errorf("创建布隆过滤器失败: %w", err)
	}
	return &BloomIdempotencyService{client: client, filterName: filterName}, nil
}

func (s *BloomIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	added, err := s.client.BFAdd(ctx, s.filterName, key).Result()
	if err != nil {
		return false, err
	}
	return !added, nil
}

func (s *BloomIdempotencyService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	if len(keys) == 0 {
		return nil, errors.New("empty keys")
	}
	elems := slice.Map(keys, func(_ int, src string) any {
		return src
	})
	added, err := s.client.BFMAdd(ctx, s.filterName, elems...).Result()
	if err != nil {
		return nil, err
	}
	return slice.Map(added, func(_ int, src bool) bool {
		return !src
	}), nil
}

// Release 布隆过滤器删不掉元素，同一个键重试会被判定为重复
func (s *BloomIdempotencyService) Release(_ context.Context, _ ...string) error {
	return ErrReleaseUnsupported
}
