package ginx

import (
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

var ErrNoResponse = errors.New("no response")

// ErrBadRequest 请求参数有问题，响应 400
var ErrBadRequest = errors.New("bad request")

// ErrServiceUnavailable 暂时不可用，调用方可以重试，响应 503
var ErrServiceUnavailable = errors.New("service unavailable")
