package retry

import (
	"errors"
	"fmt"
	"go-hailstorm/internal/pkg/retry/strategy"
)

const (
	TypeFixed       = "fixed"
	TypeExponential = "exponential"
)

var ErrUnknownStrategy = errors.New("未知的重试策略")

// Factory 每次调用返回一个全新的策略
type Factory func() strategy.Strategy

// NewRetryStrategy 按照配置创建重试策略，策略是有状态的，每一次重试流程都要重新创建
func NewRetryStrategy(cfg Config) (strategy.Strategy, error) {
	f, err := NewFactory(cfg)
	if err != nil {
		return nil, err
	}
	return f(), nil
}

// NewFactory 校验配置，返回按照这份配置创建策略的工厂
func NewFactory(cfg Config) (Factory, error) {
	switch cfg.Type {
	case TypeFixed:
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("%w: 缺少固定间隔配置", ErrUnknownStrategy)
		}
		c := *cfg.FixedInterval
		return func() strategy.Strategy {
			return strategy.NewFixedIntervalRetryStrategy(c.MaxRetries, c.Interval)
		}, nil
	case TypeExponential:
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("%w: 缺少指数退避配置", ErrUnknownStrategy)
		}
		c := *cfg.ExponentialBackoff
		return func() strategy.Strategy {
			return strategy.NewExponentialBackoffRetryStrategy(c.InitialInterval, c.MaxInterval, c.MaxRetries)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Type)
	}
}
