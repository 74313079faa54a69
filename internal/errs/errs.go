package errs

import "errors"

var (
	// ErrInvalidConfiguration 节点ID等构造参数不合法，修正配置之前重试没有意义
	ErrInvalidConfiguration = errors.New("配置不合法")
	// ErrClockRegression 系统时钟相对上一次成功生成回拨了，调用方可以稍后重试
	ErrClockRegression = errors.New("系统时钟回拨")

	ErrInvalidParameter = errors.New("参数错误")
	ErrDuplicateRequest = errors.New("重复请求")
	ErrCircuitBreaker   = errors.New("触发熔断")
	ErrCallerNotFound   = errors.New("调用方信息不存在")
)
