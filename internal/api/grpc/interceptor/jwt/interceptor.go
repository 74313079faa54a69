package jwt

import (
	"context"
	"go-hailstorm/internal/errs"
)

type callerKey struct{}

type priorityKey struct{}

func ContextWithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func GetCallerFromContext(ctx context.Context) (string, error) {
	v, ok := ctx.Value(callerKey{}).(string)
	if !ok {
		return "", errs.ErrCallerNotFound
	}
	return v, nil
}

func ContextWithPriority(ctx context.Context, priority string) context.Context {
	return context.WithValue(ctx, priorityKey{}, priority)
}

// GetPriorityFromContext 没有优先级信息时返回空字符串
func GetPriorityFromContext(ctx context.Context) string {
	v, _ := ctx.Value(priorityKey{}).(string)
	return v
}
