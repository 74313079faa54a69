package timeout

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"time"
)

// Builder 服务端超时拦截器
// 时钟回拨时 ID 服务会按照重试策略等待，截止时间决定了最多等多久
type Builder struct {
	// 调用方没有带截止时间时使用，0 表示不限制
	defaultTimeout time.Duration
	// 调用方的截止时间太远时截断到这个值，0 表示不截断
	maxTimeout time.Duration
	now        func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

func (b *Builder) WithDefaultTimeout(d time.Duration) *Builder {
	b.defaultTimeout = d
	return b
}

func (b *Builder) WithMaxTimeout(d time.Duration) *Builder {
	b.maxTimeout = d
	return b
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		now := b.now()
		md, _ := metadata.FromIncomingContext(ctx)
		deadline, ok, err := decodeDeadline(md)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "解析时间戳失败")
		}
		if ok && !now.Before(deadline) {
			return nil, status.Error(codes.DeadlineExceeded, "请求已经超时")
		}
		if !ok {
			if b.defaultTimeout <= 0 {
				return handler(ctx, req)
			}
			deadline = now.Add(b.defaultTimeout)
		}
		if b.maxTimeout > 0 && deadline.Sub(now) > b.maxTimeout {
			deadline = now.Add(b.maxTimeout)
		}

		newCtx, cancel := context.WithDeadline(ctx, deadline)
		defer cancel()
		return handler(newCtx, req)
	}
}
