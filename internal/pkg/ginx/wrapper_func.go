package ginx

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go-hailstorm/internal/pkg/logger"
	"net/http"
)

// L 包裹函数使用的日志，启动时通过 SetLogger 替换
var L logger.Logger = logger.NewNopLogger()

func SetLogger(l logger.Logger) {
	L = l
}

// W 不需要请求参数的wrapper函数
func W(fn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		render(ctx, res, err)
	}
}

// B 需求请求参数的包裹函数
func B[Req any](fn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			L.Debug("绑定参数失败", logger.Error(err))
			return
		}
		res, err := fn(ctx, req)
		render(ctx, res, err)
	}
}

func render(ctx *gin.Context, res Result, err error) {
	switch {
	case err == nil:
		ctx.PureJSON(http.StatusOK, res)
	case errors.Is(err, ErrNoResponse):
		L.Debug("不需要响应", logger.Error(err))
	case errors.Is(err, ErrUnauthorized):
		L.Debug("未授权", logger.Error(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
	case errors.Is(err, ErrBadRequest):
		L.Debug("请求参数错误", logger.Error(err), logger.String("path", ctx.FullPath()))
		ctx.PureJSON(http.StatusBadRequest, res)
	case errors.Is(err, ErrServiceUnavailable):
		L.Warn("服务暂时不可用", logger.Error(err), logger.String("path", ctx.FullPath()))
		ctx.PureJSON(http.StatusServiceUnavailable, res)
	default:
		L.Error("执行业务逻辑失败", logger.Error(err), logger.String("path", ctx.FullPath()))
		ctx.PureJSON(http.StatusInternalServerError, res)
	}
}
