package jwt

import (
	"context"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"strings"
	"time"
)

const (
	issuer        = "hailstorm"
	defaultExpiry = 24 * time.Hour

	// PriorityHigh 降级时仍然放行的优先级
	PriorityHigh = "high"
)

// Claims 调用方令牌
type Claims struct {
	jwt.RegisteredClaims
	// Caller 调用方标识，幂等键会按调用方隔离
	Caller string `json:"caller"`
	// Priority 调用方优先级，降级时只放行 high
	Priority string `json:"priority,omitempty"`
}

type InterceptorBuilder struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

func NewJwtAuth(key string) *InterceptorBuilder {
	return &InterceptorBuilder{
		key:    []byte(key),
		expiry: defaultExpiry,
		now:    time.Now,
	}
}

// WithExpiry Encode 签发的令牌有效期
func (b *InterceptorBuilder) WithExpiry(expiry time.Duration) *InterceptorBuilder {
	b.expiry = expiry
	return b
}

// Encode 签发令牌，没有设置签发方和过期时间时补上默认值
func (b *InterceptorBuilder) Encode(claims Claims) (string, error) {
	now := b.now()
	if claims.Issuer == "" {
		claims.Issuer = issuer
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(b.expiry))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.key)
}

// Decode 校验签名、有效期和签发方，兼容带 Bearer 前缀的写法
func (b *InterceptorBuilder) Decode(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return b.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("令牌解析失败: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("无效令牌")
	}
	if !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("签发方不正确: %s", claims.Issuer)
	}
	if claims.Caller == "" {
		return nil, errors.New("令牌缺少调用方")
	}
	return claims, nil
}

func (b *InterceptorBuilder) JwtAuthInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is required")
		}

		claims, err := b.Decode(authHeader[0])
		switch {
		case err == nil:
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, status.Error(codes.Unauthenticated, "token is expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, status.Error(codes.Unauthenticated, "token signature is invalid")
		default:
			return nil, status.Error(codes.Unauthenticated, "invalid token: "+err.Error())
		}

		ctx = ContextWithCaller(ctx, claims.Caller)
		if claims.Priority != "" {
			ctx = ContextWithPriority(ctx, claims.Priority)
		}
		return handler(ctx, req)
	}
}

// TokenInjector 客户端把令牌放进 authorization 头
func TokenInjector(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
