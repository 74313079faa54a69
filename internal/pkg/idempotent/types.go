package idempotent

import (
	"context"
	"errors"
)

const (
	KindRedis = "redis"
	KindBloom = "bloom"
	KindLocal = "local"
)

// ErrReleaseUnsupported 底层存储不支持删除已经记录的键
var ErrReleaseUnsupported = errors.New("幂等键不支持释放")

// IdempotencyService 幂等检查
//
//go:generate mockgen -source=./types.go -destination=./mocks/idempotent.mock.go -package=idempotentmocks IdempotencyService
type IdempotencyService interface {
	// Exists 这里的 Exist 是包涵添加的语义的，返回true说明存在，返回false说明不存在，且已经将key添加了，下面的MExists也是同理
	Exists(ctx context.Context, key string) (bool, error)
	MExists(ctx context.Context, keys ...string) ([]bool, error)
	// Release 删除已经记录的键，请求没有处理成功的时候调用，让调用方可以用同一个键重试
	Release(ctx context.Context, keys ...string) error
}
