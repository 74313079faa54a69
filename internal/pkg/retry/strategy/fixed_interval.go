package strategy

import "time"

var _ Strategy = (*FixedIntervalRetryStrategy)(nil)

type FixedIntervalRetryStrategy struct {
	maxRetries int32         // 最大重试次数，如果是 0 或负数，表示一直重试，直到调用方放弃
	interval   time.Duration // 重试间隔时间
	retries    int32         // 已经重试的次数
}

func NewFixedIntervalRetryStrategy(maxRetries int32, interval time.Duration) *FixedIntervalRetryStrategy {
	return &FixedIntervalRetryStrategy{maxRetries: maxRetries, interval: interval}
}

func (f *FixedIntervalRetryStrategy) Next() (time.Duration, bool) {
	if f.maxRetries > 0 && f.retries >= f.maxRetries {
		return 0, false
	}
	f.retries++
	return f.interval, true
}

func (f *FixedIntervalRetryStrategy) Report(_ error) Strategy {
	return f
}
