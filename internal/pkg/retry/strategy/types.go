package strategy

import "time"

// Strategy 重试策略，有状态，一次重试流程用一个
type Strategy interface {
	// Next 返回下一次重试的间隔，如果不需要继续重试，那么第二参数返回 false
	Next() (time.Duration, bool)
	// Report 上报本次失败的错误，返回的 Strategy 用于下一次重试
	Report(err error) Strategy
}

var _ Strategy = Never{}

// Never 不重试
type Never struct{}

func (Never) Next() (time.Duration, bool) {
	return 0, false
}

func (n Never) Report(error) Strategy {
	return n
}
