package log

import (
	"context"
	"errors"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"go-hailstorm/internal/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()
	info := &grpc.UnaryServerInfo{FullMethod: "/idgen.v1.IDService/Parse"}

	testCases := []struct {
		name        string
		ctx         context.Context
		slow        time.Duration
		req         any
		handler     grpc.UnaryHandler
		wantMsg     string
		wantLevel   zapcore.Level
		wantCode    codes.Code
		wantContext map[string]any
	}{
		{
			name: "成功",
			ctx:  jwt.ContextWithCaller(context.Background(), "order-service"),
			slow: time.Minute,
			req:  wrapperspb.UInt64(42),
			handler: func(ctx context.Context, req any) (any, error) {
				return wrapperspb.UInt64(43), nil
			},
			wantMsg:   "gRPC response",
			wantLevel: zapcore.InfoLevel,
			wantCode:  codes.OK,
			wantContext: map[string]any{
				"method":   info.FullMethod,
				"caller":   "order-service",
				"response": `"43"`,
			},
		},
		{
			name: "慢请求",
			ctx:  context.Background(),
			slow: time.Millisecond,
			req:  wrapperspb.UInt64(42),
			handler: func(ctx context.Context, req any) (any, error) {
				time.Sleep(5 * time.Millisecond)
				return wrapperspb.UInt64(43), nil
			},
			wantMsg:     "gRPC slow response",
			wantLevel:   zapcore.WarnLevel,
			wantCode:    codes.OK,
			wantContext: map[string]any{"method": info.FullMethod},
		},
		{
			name: "参数错误",
			ctx:  context.Background(),
			slow: time.Minute,
			req:  wrapperspb.UInt64(0),
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "ID不能为0")
			},
			wantMsg:     "gRPC response with error",
			wantLevel:   zapcore.WarnLevel,
			wantCode:    codes.InvalidArgument,
			wantContext: map[string]any{"method": info.FullMethod},
		},
		{
			name: "系统错误",
			ctx:  context.Background(),
			slow: time.Minute,
			req:  wrapperspb.UInt64(1),
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("mock error")
			},
			wantMsg:     "gRPC response with error",
			wantLevel:   zapcore.ErrorLevel,
			wantCode:    codes.Unknown,
			wantContext: map[string]any{"method": info.FullMethod},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			core, logs := observer.New(zap.DebugLevel)
			interceptor := NewBuilder().
				WithLogger(logger.NewZapLogger(zap.New(core))).
				WithSlowThreshold(tc.slow).
				Build()
			_, err := interceptor(tc.ctx, tc.req, info, tc.handler)
			assert.Equal(t, tc.wantCode, status.Code(err))

			entries := logs.All()
			assert.Len(t, entries, 2)
			assert.Equal(t, "gRPC request", entries[0].Message)
			last := entries[len(entries)-1]
			assert.Equal(t, tc.wantMsg, last.Message)
			assert.Equal(t, tc.wantLevel, last.Level)
			assert.Equal(t, tc.wantCode.String(), last.ContextMap()["status_code"])
			for k, v := range tc.wantContext {
				assert.Equal(t, v, last.ContextMap()[k], k)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", marshal(nil))
	assert.Equal(t, "", marshal("not proto"))
	assert.Equal(t, `"7"`, marshal(wrapperspb.UInt64(7)))
}
