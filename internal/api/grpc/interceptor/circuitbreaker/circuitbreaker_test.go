package circuitbreaker

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/aegis/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeBreaker struct {
	open     bool
	failed   int
	succeeds int
}

func (f *fakeBreaker) Allow() error {
	if f.open {
		return circuitbreaker.ErrNotAllowed
	}
	return nil
}

func (f *fakeBreaker) MarkSuccess() { f.succeeds++ }

func (f *fakeBreaker) MarkFailed() { f.failed++ }

func TestBuilder_Build(t *testing.T) {
	t.Parallel()
	info := &grpc.UnaryServerInfo{FullMethod: "/idgen.v1.IDService/Generate"}

	testCases := []struct {
		name         string
		open         bool
		handlerErr   error
		wantCode     codes.Code
		wantFailed   int
		wantSucceeds int
	}{
		{name: "正常", wantCode: codes.OK, wantSucceeds: 1},
		{name: "熔断", open: true, wantCode: codes.Unavailable, wantFailed: 1},
		{
			name:       "服务端故障",
			handlerErr: status.Error(codes.Unavailable, "clock regression"),
			wantCode:   codes.Unavailable,
			wantFailed: 1,
		},
		{
			name:       "未知错误",
			handlerErr: errors.New("mock error"),
			wantCode:   codes.Unknown,
			wantFailed: 1,
		},
		{
			name:         "参数错误不算故障",
			handlerErr:   status.Error(codes.InvalidArgument, "count"),
			wantCode:     codes.InvalidArgument,
			wantSucceeds: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			breaker := &fakeBreaker{open: tc.open}
			_, err := NewBuilder(breaker).Build()(context.Background(), nil, info,
				func(ctx context.Context, req any) (any, error) {
					return nil, tc.handlerErr
				})
			assert.Equal(t, tc.wantCode, status.Code(err))
			assert.Equal(t, tc.wantFailed, breaker.failed)
			assert.Equal(t, tc.wantSucceeds, breaker.succeeds)
		})
	}
}
