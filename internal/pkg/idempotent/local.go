package idempotent

import (
	"context"
	"github.com/patrickmn/go-cache"
	"sync"
	"time"
)

var _ IdempotencyService = (*LocalIdempotencyService)(nil)

// LocalIdempotencyService 进程内的幂等检查，只适合单节点部署
type LocalIdempotencyService struct {
	// go-cache 的 Add 本身是原子的，MExists 需要整体加锁
	mu     sync.Mutex
	cache  *cache.Cache
	expiry time.Duration
}

func NewLocalIdempotencyService(c *cache.Cache, expiry time.Duration) *LocalIdempotencyService {
	return &LocalIdempotencyService{cache: c, expiry: expiry}
}

func (s *LocalIdempotencyService) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Add(key, struct{}{}, s.expiry) != nil, nil
}

func (s *LocalIdempotencyService) MExists(_ context.Context, keys ...string) ([]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]bool, len(keys))
	for i, key := range keys {
		results[i] = s.cache.Add(key, struct{}{}, s.expiry) != nil
	}
	return results, nil
}

func (s *LocalIdempotencyService) Release(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}
