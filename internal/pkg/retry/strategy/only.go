package strategy

import "time"

var _ Strategy = (*OnlyStrategy)(nil)

// OnlyStrategy 装饰器，上报的错误不满足 retryable 时停止重试
type OnlyStrategy struct {
	Strategy
	retryable func(err error) bool
}

func Only(s Strategy, retryable func(err error) bool) *OnlyStrategy {
	return &OnlyStrategy{Strategy: s, retryable: retryable}
}

func (o *OnlyStrategy) Report(err error) Strategy {
	if !o.retryable(err) {
		return Never{}
	}
	o.Strategy = o.Strategy.Report(err)
	return o
}

func (o *OnlyStrategy) Next() (time.Duration, bool) {
	return o.Strategy.Next()
}
