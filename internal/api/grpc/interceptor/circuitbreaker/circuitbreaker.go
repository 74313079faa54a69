package circuitbreaker

import (
	"context"
	"github.com/go-kratos/aegis/circuitbreaker"
	"go-hailstorm/internal/errs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Builder struct {
	breaker circuitbreaker.CircuitBreaker
}

func NewBuilder(breaker circuitbreaker.CircuitBreaker) *Builder {
	return &Builder{breaker: breaker}
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		err = b.breaker.Allow()
		if err != nil {
			b.breaker.MarkFailed()
			return nil, status.Errorf(codes.Unavailable, "%s", errs.ErrCircuitBreaker)
		}

		resp, err = handler(ctx, req)
		if IsServerFault(err) {
			b.breaker.MarkFailed()
			return
		}

		b.breaker.MarkSuccess()
		return
	}
}

// IsServerFault 参数错误、重复请求这类是调用方的问题，不算服务端故障
func IsServerFault(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.Internal, codes.DeadlineExceeded, codes.Unknown:
		return true
	default:
		return false
	}
}
