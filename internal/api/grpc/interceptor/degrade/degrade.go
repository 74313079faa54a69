package degrade

import (
	"context"
	"github.com/go-kratos/aegis/circuitbreaker"
	cb "go-hailstorm/internal/api/grpc/interceptor/circuitbreaker"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Builder 服务过载时降级：只放行高优先级的调用方，其它调用方直接拒绝
type Builder struct {
	breaker circuitbreaker.CircuitBreaker
}

func NewBuilder(breaker circuitbreaker.CircuitBreaker) *Builder {
	return &Builder{breaker: breaker}
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := b.breaker.Allow(); err != nil {
			b.breaker.MarkFailed()
			if jwt.GetPriorityFromContext(ctx) != jwt.PriorityHigh {
				return nil, status.Error(codes.Unavailable, "降级非核心调用方")
			}
		}
		resp, err := handler(ctx, req)
		if cb.IsServerFault(err) {
			b.breaker.MarkFailed()
			return resp, err
		}
		b.breaker.MarkSuccess()
		return resp, err
	}
}
