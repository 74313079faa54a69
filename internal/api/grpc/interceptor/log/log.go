package log

import (
	"context"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"go-hailstorm/internal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"time"
)

const defaultSlowThreshold = 100 * time.Millisecond

// Builder 日志拦截器构建器
type Builder struct {
	logger logger.Logger
	// 超过这个耗时的成功请求按照 Warn 输出
	slowThreshold time.Duration
}

func NewBuilder() *Builder {
	return &Builder{
		logger:        logger.NewNopLogger(),
		slowThreshold: defaultSlowThreshold,
	}
}

func (b *Builder) WithLogger(logger logger.Logger) *Builder {
	b.logger = logger
	return b
}

func (b *Builder) WithSlowThreshold(d time.Duration) *Builder {
	b.slowThreshold = d
	return b
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		startTime := time.Now()
		l := b.logger.With(logger.String("method", info.FullMethod))
		if caller, err := jwt.GetCallerFromContext(ctx); err == nil {
			l = l.With(logger.String("caller", caller))
		}
		l.Debug("gRPC request", logger.String("request", marshal(req)))

		resp, err := handler(ctx, req)

		duration := time.Since(startTime)
		code := status.Code(err)
		switch {
		case err == nil && duration > b.slowThreshold:
			l.Warn("gRPC slow response",
				logger.String("status_code", code.String()),
				logger.Duration("duration", duration))
		case err == nil:
			l.Info("gRPC response",
				logger.String("status_code", code.String()),
				logger.String("response", marshal(resp)),
				logger.Duration("duration", duration))
		case isClientFault(code):
			l.Warn("gRPC response with error",
				logger.String("status_code", code.String()),
				logger.Duration("duration", duration),
				logger.Error(err))
		default:
			l.Error("gRPC response with error",
				logger.String("status_code", code.String()),
				logger.Duration("duration", duration),
				logger.Error(err))
		}
		return resp, err
	}
}

// isClientFault 调用方的问题或者可以重试的问题，不算服务端故障
func isClientFault(code codes.Code) bool {
	switch code {
	case codes.InvalidArgument, codes.AlreadyExists, codes.Unauthenticated,
		codes.PermissionDenied, codes.Canceled, codes.DeadlineExceeded, codes.Unavailable:
		return true
	default:
		return false
	}
}

func marshal(v any) string {
	msg, ok := v.(proto.Message)
	if !ok || msg == nil {
		return ""
	}
	data, err := protojson.Marshal(msg)
	if err != nil {
		return ""
	}
	return string(data)
}
