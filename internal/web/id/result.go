package id

import "go-hailstorm/internal/pkg/ginx"

const (
	InvalidParamCode    = 401001
	ClockRegressionCode = 503001
	SystemErrorCode     = 506001
)

var (
	invalidParamResult = ginx.Result{
		Code: InvalidParamCode,
		Msg:  "参数错误",
	}
	clockRegressionResult = ginx.Result{
		Code: ClockRegressionCode,
		Msg:  "时钟回拨，请稍后重试",
	}
	systemErrorResult = ginx.Result{
		Code: SystemErrorCode,
		Msg:  "系统错误",
	}
)
