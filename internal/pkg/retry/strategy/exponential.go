package strategy

import "time"

var _ Strategy = (*ExponentialBackoffRetryStrategy)(nil)

// ExponentialBackoffRetryStrategy 指数退避重试策略，间隔从 initialInterval 开始翻倍，不超过 maxInterval
type ExponentialBackoffRetryStrategy struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	// 最大重试次数，0 或负数表示一直重试
	maxRetries int32
	retries    int32
	// 上一次的间隔，0 表示还没有重试过
	current time.Duration
}

func NewExponentialBackoffRetryStrategy(initialInterval time.Duration, maxInterval time.Duration, maxRetries int32) *ExponentialBackoffRetryStrategy {
	return &ExponentialBackoffRetryStrategy{initialInterval: initialInterval, maxInterval: maxInterval, maxRetries: maxRetries}
}

// Next 返回下一次重试的间隔，如果不需要继续重试，那么第二参数返回 false
func (e *ExponentialBackoffRetryStrategy) Next() (time.Duration, bool) {
	if e.maxRetries > 0 && e.retries >= e.maxRetries {
		return 0, false
	}
	e.retries++
	switch {
	case e.current == 0:
		e.current = e.initialInterval
	case e.current < e.maxInterval:
		// 翻倍之后溢出也按照最大间隔处理
		if next := e.current * 2; next > e.current {
			e.current = next
		} else {
			e.current = e.maxInterval
		}
	}
	e.current = min(e.current, e.maxInterval)
	return e.current, true
}

func (e *ExponentialBackoffRetryStrategy) Report(_ error) Strategy {
	return e
}
