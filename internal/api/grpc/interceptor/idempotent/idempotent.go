package idempotent

import (
	"context"
	cb "go-hailstorm/internal/api/grpc/interceptor/circuitbreaker"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"go-hailstorm/internal/errs"
	"go-hailstorm/internal/pkg/idempotent"
	"go-hailstorm/internal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// MetadataKey 客户端通过这个 metadata 声明幂等键，同一个键在有效期内只会被处理一次
const MetadataKey = "idempotency-key"

type Builder struct {
	svc    idempotent.IdempotencyService
	logger logger.Logger
}

func NewBuilder(svc idempotent.IdempotencyService) *Builder {
	return &Builder{svc: svc, logger: logger.NewNopLogger()}
}

func (b *Builder) WithLogger(l logger.Logger) *Builder {
	b.logger = l
	return b
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}
		keys := md.Get(MetadataKey)
		if len(keys) == 0 {
			return handler(ctx, req)
		}
		// 有调用方信息的时候按调用方隔离
		prefix := info.FullMethod
		if caller, err := jwt.GetCallerFromContext(ctx); err == nil {
			prefix = caller + ":" + prefix
		}
		fullKeys := make([]string, 0, len(keys))
		for _, key := range keys {
			fullKeys = append(fullKeys, prefix+":"+key)
		}
		exists, err := b.svc.MExists(ctx, fullKeys...)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "进行幂等检测失败: %v", err)
		}
		for idx := range exists {
			if exists[idx] {
				// 这次新记录下来的键也要还回去，否则会被一个没有处理的请求占住
				b.release(ctx, newKeys(fullKeys, exists))
				return nil, status.Errorf(codes.AlreadyExists, "%v: %s", errs.ErrDuplicateRequest, keys[idx])
			}
		}
		resp, err := handler(ctx, req)
		// 服务端故障对调用方来说是可以重试的，这时候要释放键，允许用同一个键再来一次
		if err != nil && cb.IsServerFault(err) {
			b.release(ctx, fullKeys)
		}
		return resp, err
	}
}

func (b *Builder) release(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	// 请求超时或者被取消的时候也要释放
	if err := b.svc.Release(context.WithoutCancel(ctx), keys...); err != nil {
		b.logger.Warn("释放幂等键失败",
			logger.Int("keys", len(keys)),
			logger.Error(err))
	}
}

func newKeys(keys []string, exists []bool) []string {
	res := make([]string, 0, len(keys))
	for idx, key := range keys {
		if !exists[idx] {
			res = append(res, key)
		}
	}
	return res
}
