package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hailstorm/internal/errs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const testKey = "hailstorm-test-key"

func TestInterceptorBuilder_EncodeDecode(t *testing.T) {
	t.Parallel()
	now := time.Now().Truncate(time.Second)
	b := NewJwtAuth(testKey).WithExpiry(time.Minute)
	b.now = func() time.Time { return now }

	token, err := b.Encode(Claims{Caller: "order-service"})
	require.NoError(t, err)

	claims, err := b.Decode("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "order-service", claims.Caller)
	assert.Equal(t, issuer, claims.Issuer)
	assert.True(t, now.Add(time.Minute).Equal(claims.ExpiresAt.Time))

	_, err = NewJwtAuth("another-key").Decode(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestInterceptorBuilder_Decode(t *testing.T) {
	t.Parallel()
	b := NewJwtAuth(testKey)
	sign := func(t *testing.T, claims Claims) string {
		token, err := b.Encode(claims)
		require.NoError(t, err)
		return token
	}

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "签发方不对",
			token: func(t *testing.T) string {
				return sign(t, Claims{Caller: "a", RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone"}})
			},
		},
		{
			name:  "缺少调用方",
			token: func(t *testing.T) string { return sign(t, Claims{}) },
		},
		{
			name: "签名算法不对",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Caller: "a"}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "已经过期",
			token: func(t *testing.T) string {
				return sign(t, Claims{
					Caller:           "a",
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
				})
			},
			wantErr: jwt.ErrTokenExpired,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := b.Decode(tc.token(t))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestJwtAuthInterceptor(t *testing.T) {
	t.Parallel()
	b := NewJwtAuth(testKey)
	info := &grpc.UnaryServerInfo{FullMethod: "/idgen.v1.IDService/Generate"}

	valid, err := b.Encode(Claims{Caller: "order-service", Priority: PriorityHigh})
	require.NoError(t, err)
	expired, err := b.Encode(Claims{
		Caller:           "order-service",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	})
	require.NoError(t, err)
	withToken := func(token string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	}

	testCases := []struct {
		name         string
		ctx          context.Context
		wantCode     codes.Code
		wantCaller   string
		wantPriority string
	}{
		{
			name:     "没有metadata",
			ctx:      context.Background(),
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "没有token",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs("a", "b")),
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "token过期",
			ctx:      withToken(expired),
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "token非法",
			ctx:      withToken("abc"),
			wantCode: codes.Unauthenticated,
		},
		{
			name:         "成功",
			ctx:          withToken(valid),
			wantCode:     codes.OK,
			wantCaller:   "order-service",
			wantPriority: PriorityHigh,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var caller, priority string
			handler := func(ctx context.Context, req any) (any, error) {
				caller, _ = GetCallerFromContext(ctx)
				priority = GetPriorityFromContext(ctx)
				return "ok", nil
			}
			_, err := b.JwtAuthInterceptor()(tc.ctx, nil, info, handler)
			assert.Equal(t, tc.wantCode, status.Code(err))
			assert.Equal(t, tc.wantCaller, caller)
			assert.Equal(t, tc.wantPriority, priority)
		})
	}
}

func TestTokenInjector(t *testing.T) {
	t.Parallel()
	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get("authorization")
		return nil
	}
	require.NoError(t, TokenInjector("abc")(context.Background(), "/idgen.v1.IDService/Generate", nil, nil, nil, invoker))
	assert.Equal(t, []string{"Bearer abc"}, got)
}

func TestGetCallerFromContext(t *testing.T) {
	t.Parallel()
	_, err := GetCallerFromContext(context.Background())
	assert.ErrorIs(t, err, errs.ErrCallerNotFound)

	caller, err := GetCallerFromContext(ContextWithCaller(context.Background(), "a"))
	require.NoError(t, err)
	assert.Equal(t, "a", caller)
	assert.Empty(t, GetPriorityFromContext(context.Background()))
}
