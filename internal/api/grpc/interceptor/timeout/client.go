package timeout

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"strconv"
	"time"
)

// timeoutKey 截止时间（毫秒时间戳）在 metadata 里面的键
const timeoutKey = "timeout"

// InjectorInterceptor 客户端把 context 的截止时间放进 metadata，服务端据此重建超时
func InjectorInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if deadline, ok := ctx.Deadline(); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, timeoutKey, encodeDeadline(deadline))
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func encodeDeadline(deadline time.Time) string {
	return strconv.FormatInt(deadline.UnixMilli(), 10)
}

// decodeDeadline 第二个返回值表示 metadata 里面有没有截止时间
func decodeDeadline(md metadata.MD) (time.Time, bool, error) {
	vals := md.Get(timeoutKey)
	if len(vals) == 0 {
		return time.Time{}, false, nil
	}
	ms, err := strconv.ParseInt(vals[0], 10, 64)
	if err != nil {
		return time.Time{}, true, err
	}
	return time.UnixMilli(ms), true, nil
}
