package timeout

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInjectorInterceptor(t *testing.T) {
	t.Parallel()
	interceptor := InjectorInterceptor()

	deadline := time.Now().Add(time.Second)
	ctx, cancel := context.WithDeadline(t.Context(), deadline)
	defer cancel()

	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(timeoutKey)
		return nil
	}
	require.NoError(t, interceptor(ctx, "/idgen.v1.IDService/Generate", nil, nil, nil, invoker))
	assert.Equal(t, []string{strconv.FormatInt(deadline.UnixMilli(), 10)}, got)

	got = nil
	require.NoError(t, interceptor(t.Context(), "/idgen.v1.IDService/Generate", nil, nil, nil, invoker))
	assert.Empty(t, got)
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()
	info := &grpc.UnaryServerInfo{FullMethod: "/idgen.v1.IDService/Generate"}
	now := time.UnixMilli(1_700_000_000_000)
	withDeadline := func(t *testing.T, d time.Time) context.Context {
		return metadata.NewIncomingContext(t.Context(), metadata.Pairs(timeoutKey, encodeDeadline(d)))
	}

	testCases := []struct {
		name         string
		builder      func() *Builder
		ctx          func(t *testing.T) context.Context
		wantDeadline time.Time
		wantCode     codes.Code
	}{
		{
			name:     "没有metadata",
			builder:  NewBuilder,
			ctx:      func(t *testing.T) context.Context { return t.Context() },
			wantCode: codes.OK,
		},
		{
			name:    "没有超时字段",
			builder: NewBuilder,
			ctx: func(t *testing.T) context.Context {
				return metadata.NewIncomingContext(t.Context(), metadata.Pairs("a", "b"))
			},
			wantCode: codes.OK,
		},
		{
			name:         "设置了超时",
			builder:      NewBuilder,
			ctx:          func(t *testing.T) context.Context { return withDeadline(t, now.Add(time.Minute)) },
			wantDeadline: now.Add(time.Minute),
			wantCode:     codes.OK,
		},
		{
			name: "没有超时字段时使用默认超时",
			builder: func() *Builder {
				return NewBuilder().WithDefaultTimeout(time.Second)
			},
			ctx:          func(t *testing.T) context.Context { return t.Context() },
			wantDeadline: now.Add(time.Second),
			wantCode:     codes.OK,
		},
		{
			name: "截止时间太远被截断",
			builder: func() *Builder {
				return NewBuilder().WithMaxTimeout(3 * time.Second)
			},
			ctx:          func(t *testing.T) context.Context { return withDeadline(t, now.Add(time.Hour)) },
			wantDeadline: now.Add(3 * time.Second),
			wantCode:     codes.OK,
		},
		{
			name:    "格式错误",
			builder: NewBuilder,
			ctx: func(t *testing.T) context.Context {
				return metadata.NewIncomingContext(t.Context(), metadata.Pairs(timeoutKey, "abc"))
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "已经超时",
			builder:  NewBuilder,
			ctx:      func(t *testing.T) context.Context { return withDeadline(t, now.Add(-time.Second)) },
			wantCode: codes.DeadlineExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := tc.builder()
			b.now = func() time.Time { return now }
			var got time.Time
			handler := func(ctx context.Context, req any) (any, error) {
				got, _ = ctx.Deadline()
				return "ok", nil
			}
			_, err := b.Build()(tc.ctx(t), nil, info, handler)
			assert.Equal(t, tc.wantCode, status.Code(err))
			assert.True(t, tc.wantDeadline.Equal(got), "want %v, got %v", tc.wantDeadline, got)
		})
	}
}
