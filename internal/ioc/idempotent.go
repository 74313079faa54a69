package ioc

import (
	"context"
	"fmt"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go-hailstorm/internal/pkg/idempotent"
	"time"
)

func InitIdempotencyService(cmd redis.Cmdable, c *cache.Cache) idempotent.IdempotencyService {
	type Config struct {
		Kind   string        `yaml:"kind"`
		Expiry time.Duration `yaml:"expiry"`
		Bloom  struct {
			FilterName string  `yaml:"filterName"`
			Capacity   int64   `yaml:"capacity"`
			ErrorRate  float64 `yaml:"errorRate"`
		} `yaml:"bloom"`
	}
	cfg := Config{
		Kind:   idempotent.KindLocal,
		Expiry: 24 * time.Hour,
	}
	err := viper.UnmarshalKey("idempotent", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Kind {
	case idempotent.KindRedis:
		return idempotent.NewRedisIdempotencyService(cmd, cfg.Expiry)
	case idempotent.KindBloom:
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		svc, err := idempotent.NewBloomIdempotencyService(ctx, cmd,
			cfg.Bloom.FilterName, cfg.Bloom.Capacity, cfg.Bloom.ErrorRate)
		if err != nil {
			panic(err)
		}
		return svc
	case idempotent.KindLocal:
		return idempotent.NewLocalIdempotencyService(c, cfg.Expiry)
	default:
		panic(fmt.Sprintf("未知的幂等实现: %s", cfg.Kind))
	}
}
